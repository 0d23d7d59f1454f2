package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin      = "admin"
	RoleFornecedor = "fornecedor"
)

// User representa uma conta do portal (administrador ou fornecedor).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // hash bcrypt, nunca senha em claro após persistir
	Role         string // admin, fornecedor
	CreatedAt    time.Time
}
