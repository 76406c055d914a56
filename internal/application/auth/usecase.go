package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/pkg/jwt"
)

// OperatorID identidad del único operador de la consola.
const OperatorID = "operador"

// RoleAdmin rol que se firma en el token.
const RoleAdmin = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del operador contra el hash bcrypt de la configuración.
type AuthUseCase struct {
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: []byte(passwordHash), jwtCfg: jwtCfg}
}

// Login verifica la contraseña, genera JWT y retorna token + operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, OperatorID, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		Operator:  OperatorID,
	}, nil
}

// HashPassword genera el hash bcrypt para OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", fmt.Errorf("auth: la contraseña debe tener al menos 6 caracteres: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
