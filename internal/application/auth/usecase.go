package auth

import (
	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
	pkgjwt "github.com/gabrielxlive96/portaldecompras/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação: login por username e senha.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/senha, gera JWT e retorna token + papel.
// Usuário desconhecido e senha incorreta devolvem o mesmo erro
// (ErrCredenciaisInvalidas) para não permitir enumeração de usuários.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
