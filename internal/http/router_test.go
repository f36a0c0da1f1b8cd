package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"adopta-gatos/internal/cache"
	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/service"
)

type mockAdminRepo struct {
	byUsername map[string]domain.AdminUser
}

func (m *mockAdminRepo) GetByUsername(_ context.Context, username string) (domain.AdminUser, error) {
	admin, ok := m.byUsername[username]
	if !ok {
		return domain.AdminUser{}, domain.ErrNotFound
	}
	return admin, nil
}

type mockCatRepo struct {
	cats map[string]domain.Cat
}

func (m *mockCatRepo) GetAll(_ context.Context) ([]domain.Cat, error) {
	out := make([]domain.Cat, 0, len(m.cats))
	for _, c := range m.cats {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCatRepo) GetByID(_ context.Context, id string) (domain.Cat, error) {
	c, ok := m.cats[id]
	if !ok {
		return domain.Cat{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCatRepo) Create(_ context.Context, cat domain.Cat) error {
	m.cats[cat.ID] = cat
	return nil
}

func (m *mockCatRepo) Update(_ context.Context, cat domain.Cat) error {
	if _, ok := m.cats[cat.ID]; !ok {
		return domain.ErrNotFound
	}
	m.cats[cat.ID] = cat
	return nil
}

func (m *mockCatRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.cats[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.cats, id)
	return nil
}

type mockRequestRepo struct {
	requests map[string]domain.AdoptionRequest
}

func (m *mockRequestRepo) GetAll(_ context.Context) ([]domain.AdoptionRequest, error) {
	out := make([]domain.AdoptionRequest, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id string) (domain.AdoptionRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return domain.AdoptionRequest{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *mockRequestRepo) Create(_ context.Context, req domain.AdoptionRequest) error {
	m.requests[req.ID] = req
	return nil
}

func (m *mockRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error {
	r, ok := m.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = updatedAt
	m.requests[id] = r
	return nil
}

func (m *mockRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.requests, id)
	return nil
}

type testApp struct {
	router   *gin.Engine
	catRepo  *mockCatRepo
	reqRepo  *mockRequestRepo
	tokenSvc *service.TokenService
	cookie   *SessionCookie
}

// newTestApp arma el stack completo con repos en memoria y cache pass-through.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	adminRepo := &mockAdminRepo{byUsername: map[string]domain.AdminUser{
		"admin": {
			ID:           "a1",
			Username:     "admin",
			Name:         "Ana Admin",
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		},
	}}
	catRepo := &mockCatRepo{cats: make(map[string]domain.Cat)}
	reqRepo := &mockRequestRepo{requests: make(map[string]domain.AdoptionRequest)}

	store := cache.NewStore(nil, logger)
	entityCache := cache.NewEntityCache(store, time.Minute, time.Minute, time.Minute, time.Minute)

	tokenSvc := service.NewTokenService("secret", time.Hour)
	authSvc := service.NewAuthService(logger, adminRepo, tokenSvc)
	catSvc := service.NewCatService(logger, catRepo, entityCache)
	reqSvc := service.NewRequestService(logger, reqRepo, catSvc, entityCache)

	cookie := NewSessionCookie("auth-token", 3600, false)
	guard := NewRouteGuard(authSvc, cookie, PublicPaths, ProtectedPrefixes, "/admin/login", false)

	router := NewRouter(
		logger,
		guard,
		NewAuthHandler(logger, authSvc, cookie),
		NewCatHandler(logger, catSvc),
		NewRequestHandler(logger, reqSvc),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
		nil,
	)
	return &testApp{
		router:   router,
		catRepo:  catRepo,
		reqRepo:  reqRepo,
		tokenSvc: tokenSvc,
		cookie:   cookie,
	}
}
