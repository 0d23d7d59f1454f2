package postgres

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
	"github.com/gabrielxlive96/portaldecompras/pkg/config"
)

// SeedUsers garante as duas contas iniciais: um administrador e um fornecedor
// de exemplo. Idempotente: verifica existência antes de inserir e nunca
// sobrescreve contas existentes (trocas de senha feitas depois são mantidas).
func SeedUsers(userRepo repository.UserRepository, cfg config.SeedConfig) error {
	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"admin", cfg.AdminPassword, entity.RoleAdmin},
		{"fornecedor1", cfg.FornecedorPassword, entity.RoleFornecedor},
	}

	for _, s := range seeds {
		existing, err := userRepo.FindByUsername(s.username)
		if err != nil {
			return fmt.Errorf("seed: consultar %s: %w", s.username, err)
		}
		if existing != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash de %s: %w", s.username, err)
		}
		err = userRepo.Create(&entity.User{
			Username:     s.username,
			PasswordHash: string(hash),
			Role:         s.role,
			CreatedAt:    time.Now(),
		})
		// Outra instância pode ter inserido entre o SELECT e o INSERT.
		if err != nil && !errors.Is(err, domain.ErrDuplicado) {
			return fmt.Errorf("seed: criar %s: %w", s.username, err)
		}
	}
	return nil
}
