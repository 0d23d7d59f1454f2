package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate cria o esquema se ainda não existir. Idempotente: seguro de rodar
// a cada inicialização.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL CHECK (role IN ('admin', 'fornecedor')),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cotacoes (
			id         BIGSERIAL PRIMARY KEY,
			rubrica    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS itens_cotacao (
			id          BIGSERIAL PRIMARY KEY,
			cotacao_id  BIGINT NOT NULL REFERENCES cotacoes(id),
			item        TEXT NOT NULL,
			descricao   TEXT NOT NULL,
			unidade     TEXT NOT NULL,
			quantidade  INTEGER NOT NULL CHECK (quantidade > 0)
		)`,
		`CREATE TABLE IF NOT EXISTS respostas_itens (
			id            BIGSERIAL PRIMARY KEY,
			item_id       BIGINT NOT NULL REFERENCES itens_cotacao(id),
			fornecedor    TEXT NOT NULL,
			preco         NUMERIC(14,2) NOT NULL CHECK (preco >= 0),
			prazo         TEXT NOT NULL DEFAULT '',
			condicoes     TEXT NOT NULL DEFAULT '',
			anexo         TEXT NOT NULL DEFAULT '',
			data_resposta TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_itens_cotacao_cotacao_id ON itens_cotacao(cotacao_id)`,
		`CREATE INDEX IF NOT EXISTS idx_respostas_itens_item_id ON respostas_itens(item_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migração do esquema: %w", err)
		}
	}
	return nil
}
