package repository

import "github.com/gabrielxlive96/portaldecompras/internal/domain/entity"

// UserRepository define a porta de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
