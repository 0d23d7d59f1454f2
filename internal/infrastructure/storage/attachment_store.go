// Package storage guarda os anexos das propostas em um diretório local,
// um arquivo por envio.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
)

// Extensões aceitas para anexos (proposta em PDF ou documento Word).
// Verificação por extensão, como no fluxo de upload do portal.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AttachmentStore grava anexos em disco sob um diretório base.
type AttachmentStore struct {
	baseDir string
}

// NewAttachmentStore cria o diretório base se necessário.
func NewAttachmentStore(baseDir string) (*AttachmentStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de anexos: %w", err)
	}
	return &AttachmentStore{baseDir: baseDir}, nil
}

// Save grava o anexo e devolve o caminho relativo ao diretório base.
// O nome gerado é {fornecedor}_{itemID}_{sufixo}_{arquivo}: o sufixo
// aleatório evita que dois envios com o mesmo nome de arquivo se
// sobrescrevam. ErrAnexoNaoPermitido para extensões fora da lista.
func (s *AttachmentStore) Save(supplier string, itemID int64, filename string, r io.Reader) (string, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedExtensions[ext] {
		return "", domain.ErrAnexoNaoPermitido
	}

	suffix := uuid.NewString()[:8]
	name := fmt.Sprintf("%s_%d_%s_%s", sanitize(supplier), itemID, suffix, sanitize(base))
	path := filepath.Join(s.baseDir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("criar anexo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("gravar anexo: %w", err)
	}
	return path, nil
}

// sanitize remove separadores de caminho e espaços do componente do nome.
func sanitize(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "-", "..", "-")
	return replacer.Replace(s)
}
