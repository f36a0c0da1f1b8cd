package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adopta-gatos/internal/cache"
	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/repository"
)

var (
	ErrInvalidApplicant = errors.New("invalid applicant")
	ErrCatNotAvailable  = errors.New("cat not available")
	// ErrAlreadyReviewed: solo una solicitud pendiente puede aprobarse o rechazarse.
	ErrAlreadyReviewed = errors.New("request already reviewed")
	ErrInvalidDecision = errors.New("invalid review decision")
)

// RequestService maneja el alta pública de solicitudes de adopción y su
// revisión desde el panel de administración.
type RequestService struct {
	logger   *zap.Logger
	requests repository.AdoptionRequestRepository
	cats     *CatService
	cache    *cache.EntityCache
}

func NewRequestService(logger *zap.Logger, requests repository.AdoptionRequestRepository, cats *CatService, entityCache *cache.EntityCache) *RequestService {
	return &RequestService{
		logger:   logger,
		requests: requests,
		cats:     cats,
		cache:    entityCache,
	}
}

// SubmitRequestInput es el formulario público de adopción.
type SubmitRequestInput struct {
	CatID     string
	Applicant domain.Applicant
	Message   string
}

// SubmitRequest crea una solicitud pendiente para un gato aún no adoptado.
func (s *RequestService) SubmitRequest(ctx context.Context, input SubmitRequestInput) (domain.AdoptionRequest, error) {
	applicant := domain.Applicant{
		Name:    strings.TrimSpace(input.Applicant.Name),
		Email:   strings.TrimSpace(input.Applicant.Email),
		Phone:   strings.TrimSpace(input.Applicant.Phone),
		Address: strings.TrimSpace(input.Applicant.Address),
	}
	if applicant.Name == "" || applicant.Email == "" {
		return domain.AdoptionRequest{}, ErrInvalidApplicant
	}

	cat, err := s.cats.GetCat(ctx, input.CatID)
	if err != nil {
		return domain.AdoptionRequest{}, err
	}
	if cat.Adopted {
		return domain.AdoptionRequest{}, ErrCatNotAvailable
	}

	now := time.Now().UTC()
	req := domain.AdoptionRequest{
		ID:        uuid.NewString(),
		CatID:     cat.ID,
		Applicant: applicant,
		Message:   strings.TrimSpace(input.Message),
		Status:    domain.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return domain.AdoptionRequest{}, err
	}
	s.cache.InvalidateRequests(ctx)
	return req, nil
}

// ListRequests devuelve todas las solicitudes, cache mediante.
func (s *RequestService) ListRequests(ctx context.Context) ([]domain.AdoptionRequest, error) {
	if cached, ok := s.cache.GetRequests(ctx); ok {
		return cached, nil
	}
	reqs, err := s.requests.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetRequests(ctx, reqs)
	return reqs, nil
}

// GetRequest devuelve una solicitud por id, cache mediante.
func (s *RequestService) GetRequest(ctx context.Context, id string) (domain.AdoptionRequest, error) {
	if cached, ok := s.cache.GetRequest(ctx, id); ok {
		return cached, nil
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domain.AdoptionRequest{}, err
	}
	s.cache.SetRequest(ctx, req)
	return req, nil
}

// Review aprueba o rechaza una solicitud pendiente. Al aprobar, el gato
// queda marcado como adoptado.
func (s *RequestService) Review(ctx context.Context, id string, decision domain.RequestStatus) (domain.AdoptionRequest, error) {
	if decision != domain.RequestApproved && decision != domain.RequestRejected {
		return domain.AdoptionRequest{}, ErrInvalidDecision
	}

	// Lectura directa del repositorio: una decisión de revisión no puede
	// basarse en una copia cacheada.
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domain.AdoptionRequest{}, err
	}
	if req.Status != domain.RequestPending {
		return domain.AdoptionRequest{}, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	if err := s.requests.UpdateStatus(ctx, id, decision, now); err != nil {
		return domain.AdoptionRequest{}, err
	}
	req.Status = decision
	req.UpdatedAt = now
	s.cache.InvalidateRequests(ctx)

	if decision == domain.RequestApproved {
		if err := s.cats.MarkAdopted(ctx, req.CatID); err != nil {
			// La solicitud ya quedó aprobada; se reporta pero no se revierte.
			s.logger.Error("mark cat adopted failed", zap.String("cat_id", req.CatID), zap.Error(err))
		}
	}
	return req, nil
}

// DeleteRequest elimina una solicitud e invalida el cache.
func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateRequests(ctx)
	return nil
}
