package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"adopta-gatos/internal/domain"
)

type mockAdminRepo struct {
	byUsername map[string]domain.AdminUser
	err        error
}

func (m *mockAdminRepo) GetByUsername(_ context.Context, username string) (domain.AdminUser, error) {
	if m.err != nil {
		return domain.AdminUser{}, m.err
	}
	admin, ok := m.byUsername[username]
	if !ok {
		return domain.AdminUser{}, domain.ErrNotFound
	}
	return admin, nil
}

func newTestAuthService(t *testing.T, repo *mockAdminRepo) *AuthService {
	t.Helper()
	return NewAuthService(zap.NewNop(), repo, NewTokenService("secret", time.Hour))
}

func testAdmin(t *testing.T, password string) domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.AdminUser{
		ID:           "a1",
		Username:     "admin",
		Name:         "Ana Admin",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAuthService_LoginSuccess(t *testing.T) {
	admin := testAdmin(t, "hunter22")
	svc := newTestAuthService(t, &mockAdminRepo{byUsername: map[string]domain.AdminUser{"admin": admin}})

	result, err := svc.Login(context.Background(), "admin", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	want := domain.IdentityClaim{ID: "a1", Username: "admin", Name: "Ana Admin"}
	if result.User != want {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claim, ok := svc.VerifySession(result.Token)
	if !ok || claim != want {
		t.Fatalf("expected session for issued token, got %+v ok=%v", claim, ok)
	}
}

func TestAuthService_LoginUniformFailure(t *testing.T) {
	admin := testAdmin(t, "hunter22")
	svc := newTestAuthService(t, &mockAdminRepo{byUsername: map[string]domain.AdminUser{"admin": admin}})

	// Usuario desconocido y password incorrecta devuelven el mismo error.
	cases := map[string][2]string{
		"unknown user":   {"nobody", "hunter22"},
		"wrong password": {"admin", "wrong"},
		"empty username": {"", "hunter22"},
		"empty password": {"admin", ""},
	}
	for name, creds := range cases {
		_, err := svc.Login(context.Background(), creds[0], creds[1])
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestAuthService_LoginRepositoryFailurePropagates(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := newTestAuthService(t, &mockAdminRepo{err: repoErr})

	_, err := svc.Login(context.Background(), "admin", "hunter22")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}

func TestAuthService_VerifySessionInvalidToken(t *testing.T) {
	svc := newTestAuthService(t, &mockAdminRepo{})
	if _, ok := svc.VerifySession("garbage"); ok {
		t.Fatalf("expected invalid session")
	}
	if _, ok := svc.VerifySession(""); ok {
		t.Fatalf("expected invalid session for empty token")
	}
}
