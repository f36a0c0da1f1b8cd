package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/repository"
)

// ErrInvalidCredentials cubre tanto usuario desconocido como password
// incorrecta: el transporte nunca distingue entre ambos casos.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash consume un compare de bcrypt cuando el usuario no existe,
// para que ambas ramas de fallo cuesten lo mismo.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	return h
}()

// AuthService autentica administradores y emite tokens de sesión.
type AuthService struct {
	logger *zap.Logger
	admins repository.AdminRepository
	tokens *TokenService
}

func NewAuthService(logger *zap.Logger, admins repository.AdminRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		logger: logger,
		admins: admins,
		tokens: tokens,
	}
}

// LoginResult es lo que el boundary expone tras un login exitoso.
type LoginResult struct {
	Token string
	User  domain.IdentityClaim
}

// Login verifica credenciales contra el repositorio y emite un token.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return LoginResult{}, ErrInvalidCredentials
		}
		s.logger.Error("admin lookup failed", zap.Error(err))
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claim := domain.IdentityClaim{
		ID:       admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
	}
	token, err := s.tokens.Issue(claim)
	if err != nil {
		s.logger.Error("token issue failed", zap.Error(err))
		return LoginResult{}, err
	}
	return LoginResult{Token: token, User: claim}, nil
}

// VerifySession valida un token y devuelve la identidad, o false si no hay sesión.
func (s *AuthService) VerifySession(token string) (domain.IdentityClaim, bool) {
	claim, err := s.tokens.Verify(token)
	if err != nil {
		return domain.IdentityClaim{}, false
	}
	return claim, true
}
