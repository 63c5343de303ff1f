package service

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifica la clave administrativa que protege la edición de
// configuración. Un solo editor, sin cuentas de usuario.
type AuthService struct {
	logger       *zap.Logger
	adminKeyHash string
	jwt          *JWTService
}

func NewAuthService(logger *zap.Logger, adminKeyHash string, jwtSvc *JWTService) *AuthService {
	return &AuthService{
		logger:       logger,
		adminKeyHash: adminKeyHash,
		jwt:          jwtSvc,
	}
}

// Login compara la clave contra el hash bcrypt configurado y, si coincide,
// emite un par de tokens para el editor.
func (s *AuthService) Login(adminKey string) (TokenPair, error) {
	if s.adminKeyHash == "" {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminKeyHash), []byte(adminKey)); err != nil {
		if s.logger != nil {
			s.logger.Warn("admin login rejected")
		}
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.jwt.GeneratePair("admin")
}

// Refresh canjea un refresh token por un par nuevo.
func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	return s.jwt.RefreshPair(refreshToken)
}
