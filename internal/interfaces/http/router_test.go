package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/gabrielxlive96/portaldecompras/internal/application/auth"
	"github.com/gabrielxlive96/portaldecompras/internal/application/importer"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/pdf"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/storage"
	apphttp "github.com/gabrielxlive96/portaldecompras/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (os adaptadores Postgres implementam as mesmas portas)
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	m.users[u.Username] = u
	return nil
}

func (m *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	return m.users[username], nil
}

type memQuotationRepo struct {
	quotations []*entity.Quotation
	items      []*entity.LineItem
	nextID     int64
}

func (m *memQuotationRepo) Create(q *entity.Quotation) error {
	m.nextID++
	q.ID = m.nextID
	m.quotations = append(m.quotations, q)
	return nil
}

func (m *memQuotationRepo) CreateItem(item *entity.LineItem) error {
	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, item)
	return nil
}

func (m *memQuotationRepo) GetByID(id int64) (*entity.Quotation, error) {
	for _, q := range m.quotations {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (m *memQuotationRepo) List() ([]*entity.Quotation, error) {
	out := make([]*entity.Quotation, len(m.quotations))
	for i, q := range m.quotations {
		out[len(out)-1-i] = q
	}
	return out, nil
}

func (m *memQuotationRepo) ListItems(quotationID int64) ([]*entity.LineItem, error) {
	var out []*entity.LineItem
	for _, it := range m.items {
		if it.QuotationID == quotationID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memQuotationRepo) GetItemByID(id int64) (*entity.LineItem, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

type memResponseRepo struct {
	responses []*entity.SupplierResponse
	nextID    int64
}

func (m *memResponseRepo) Create(r *entity.SupplierResponse) error {
	m.nextID++
	r.ID = m.nextID
	m.responses = append(m.responses, r)
	return nil
}

func (m *memResponseRepo) ListByItem(lineItemID int64) ([]*entity.SupplierResponse, error) {
	var out []*entity.SupplierResponse
	for _, r := range m.responses {
		if r.LineItemID == lineItemID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memTxRunner struct {
	repo *memQuotationRepo
}

func (m *memTxRunner) Run(_ context.Context, fn func(repo repository.QuotationRepository) error) error {
	return fn(m.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem da aplicação de teste
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	qRepo *memQuotationRepo
	rRepo *memResponseRepo
}

func buildEnv(t *testing.T) *testEnv {
	t.Helper()

	hashAdmin, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashFornecedor, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo := &memUserRepo{users: map[string]*entity.User{
		"admin":       {ID: 1, Username: "admin", PasswordHash: string(hashAdmin), Role: entity.RoleAdmin},
		"fornecedor1": {ID: 2, Username: "fornecedor1", PasswordHash: string(hashFornecedor), Role: entity.RoleFornecedor},
	}}

	qRepo := &memQuotationRepo{}
	rRepo := &memResponseRepo{}
	store, err := storage.NewAttachmentStore(t.TempDir())
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	quotationUC := usecase.NewQuotationUseCase(qRepo, rRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		QuotationUC: quotationUC,
		ResponseUC:  usecase.NewResponseUseCase(qRepo, rRepo),
		ImportUC:    importer.NewImportUseCase(&memTxRunner{repo: qRepo}),
		PDFUC:       usecase.NewPDFUseCase(quotationUC, pdf.NewMarotoPDFGenerator()),
		Attachments: store,
		JWTSecret:   testJWTSecret,
	})
	return &testEnv{app: app, qRepo: qRepo, rRepo: rRepo}
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s deve funcionar", username)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["token"])
	return "Bearer " + out["token"]
}

// planilhaExemplo monta o multipart com a planilha do cenário A/A/B.
func planilhaExemplo(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	dados := [][]interface{}{
		{"Item", "Rubrica", "Descrição", "Unidade de Medida", "Quantidade"},
		{"1", "A", "X", "UN", 10},
		{"2", "A", "Y", "UN", 5},
		{"3", "B", "Z", "KG", 2},
	}
	for r, linha := range dados {
		for c, v := range linha {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var xlsx bytes.Buffer
	require.NoError(t, f.Write(&xlsx))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("arquivo", "solicitacoes.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo completo: login → importação → proposta → mapa comparativo
// ──────────────────────────────────────────────────────────────────────────────

func TestFluxo_LoginRetornaRole(t *testing.T) {
	env := buildEnv(t)

	body, err := json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.RoleAdmin, out["role"])
}

func TestFluxo_LoginInvalidoRetorna401(t *testing.T) {
	env := buildEnv(t)

	for _, creds := range []map[string]string{
		{"username": "admin", "password": "errada"},
		{"username": "inexistente", "password": "qualquer"},
	} {
		body, err := json.Marshal(creds)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"senha errada e usuário inexistente devem responder igual")
	}
}

func TestFluxo_ImportacaoExclusivaDoAdmin(t *testing.T) {
	env := buildEnv(t)
	tokenFornecedor := login(t, env.app, "fornecedor1", "123456")

	body, contentType := planilhaExemplo(t)
	req := httptest.NewRequest(http.MethodPost, "/api/cotacoes/importar", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", tokenFornecedor)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.qRepo.quotations, "importação bloqueada não grava nada")
}

func TestFluxo_ImportarEListarCotacoes(t *testing.T) {
	env := buildEnv(t)
	tokenAdmin := login(t, env.app, "admin", "admin123")

	body, contentType := planilhaExemplo(t)
	req := httptest.NewRequest(http.MethodPost, "/api/cotacoes/importar", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", tokenAdmin)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 2, result["cotacoes_criadas"])
	assert.Equal(t, 3, result["itens_criados"])

	// Listado: mais recente (B) primeiro
	reqList := httptest.NewRequest(http.MethodGet, "/api/cotacoes", nil)
	reqList.Header.Set("Authorization", tokenAdmin)
	respList, err := env.app.Test(reqList, -1)
	require.NoError(t, err)
	defer respList.Body.Close()

	require.Equal(t, http.StatusOK, respList.StatusCode)
	var cotacoes []map[string]interface{}
	require.NoError(t, json.NewDecoder(respList.Body).Decode(&cotacoes))
	require.Len(t, cotacoes, 2)
	assert.Equal(t, "B", cotacoes[0]["rubrica"])
	assert.Equal(t, "A", cotacoes[1]["rubrica"])
}

func TestFluxo_PropostaEMapaComparativo(t *testing.T) {
	env := buildEnv(t)
	tokenAdmin := login(t, env.app, "admin", "admin123")
	tokenFornecedor := login(t, env.app, "fornecedor1", "123456")

	// Semeia uma cotação com um item direto no repositório.
	q := &entity.Quotation{Rubrica: "A", CreatedAt: time.Now()}
	require.NoError(t, env.qRepo.Create(q))
	item := &entity.LineItem{QuotationID: q.ID, ItemCode: "1", Description: "X", Unit: "UN", Quantity: 10}
	require.NoError(t, env.qRepo.CreateItem(item))

	// Duas propostas do fornecedor (histórico preservado).
	for _, preco := range []string{"12.50", "9.99"} {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("preco", preco))
		require.NoError(t, w.WriteField("prazo", "10 dias"))
		require.NoError(t, w.WriteField("condicoes", "30 dias"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/itens/%d/respostas", item.ID), &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set("Authorization", tokenFornecedor)
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// Admin consulta o ranking do item.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/itens/%d/respostas", item.ID), nil)
	req.Header.Set("Authorization", tokenAdmin)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Responses []map[string]interface{} `json:"respostas"`
		Cheapest  map[string]interface{}   `json:"menor_preco"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Responses, 2)
	assert.Equal(t, "9.99", out.Responses[0]["preco"])
	assert.Equal(t, "12.50", out.Responses[1]["preco"])
	require.NotNil(t, out.Cheapest)
	assert.Equal(t, "9.99", out.Cheapest["preco"])
	assert.Equal(t, "fornecedor1", out.Cheapest["fornecedor"])
}

func TestFluxo_PropostaParaItemInexistenteRetorna404(t *testing.T) {
	env := buildEnv(t)
	tokenFornecedor := login(t, env.app, "fornecedor1", "123456")

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("preco", "10.00"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/itens/999/respostas", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", tokenFornecedor)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, env.rRepo.responses)
}

func TestFluxo_MapaComparativoPDF(t *testing.T) {
	env := buildEnv(t)
	tokenAdmin := login(t, env.app, "admin", "admin123")

	q := &entity.Quotation{Rubrica: "A", CreatedAt: time.Now()}
	require.NoError(t, env.qRepo.Create(q))
	item := &entity.LineItem{QuotationID: q.ID, ItemCode: "1", Description: "X", Unit: "UN", Quantity: 10}
	require.NoError(t, env.qRepo.CreateItem(item))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/cotacoes/%d/mapa/pdf", q.ID), nil)
	req.Header.Set("Authorization", tokenAdmin)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
