package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adopta-gatos/internal/cache"
	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/repository"
)

// CatService coordina lecturas read-through e invalidación tras escrituras
// para el catálogo de gatos. El repositorio es la fuente de verdad; el cache
// solo acota la carga de lectura.
type CatService struct {
	logger *zap.Logger
	cats   repository.CatRepository
	cache  *cache.EntityCache
}

func NewCatService(logger *zap.Logger, cats repository.CatRepository, entityCache *cache.EntityCache) *CatService {
	return &CatService{
		logger: logger,
		cats:   cats,
		cache:  entityCache,
	}
}

// ListCats devuelve el catálogo completo, cache mediante.
func (s *CatService) ListCats(ctx context.Context) ([]domain.Cat, error) {
	if cached, ok := s.cache.GetCats(ctx); ok {
		return cached, nil
	}
	cats, err := s.cats.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetCats(ctx, cats)
	return cats, nil
}

// FilterCats aplica el filtro público sobre el listado cacheado.
func (s *CatService) FilterCats(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error) {
	cats, err := s.ListCats(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Cat, 0, len(cats))
	for _, c := range cats {
		if filter.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// GetCat devuelve un gato por id, cache mediante.
func (s *CatService) GetCat(ctx context.Context, id string) (domain.Cat, error) {
	if cached, ok := s.cache.GetCat(ctx, id); ok {
		return cached, nil
	}
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return domain.Cat{}, err
	}
	s.cache.SetCat(ctx, cat)
	return cat, nil
}

// CreateCatInput son los campos editables de un gato.
type CreateCatInput struct {
	Name        string
	Breed       string
	AgeMonths   int
	Sex         string
	Description string
	PhotoURL    string
}

// CreateCat persiste primero y recién entonces invalida el cache. Si la
// invalidación falla la escritura sigue siendo exitosa: la staleness queda
// acotada por TTL.
func (s *CatService) CreateCat(ctx context.Context, input CreateCatInput) (domain.Cat, error) {
	now := time.Now().UTC()
	cat := domain.Cat{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Breed:       strings.TrimSpace(input.Breed),
		AgeMonths:   input.AgeMonths,
		Sex:         strings.TrimSpace(input.Sex),
		Description: strings.TrimSpace(input.Description),
		PhotoURL:    strings.TrimSpace(input.PhotoURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.cats.Create(ctx, cat); err != nil {
		return domain.Cat{}, err
	}
	s.cache.InvalidateCats(ctx)
	return cat, nil
}

// UpdateCat aplica el patch sobre el registro actual del repositorio.
func (s *CatService) UpdateCat(ctx context.Context, id string, input CreateCatInput, adopted *bool) (domain.Cat, error) {
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return domain.Cat{}, err
	}
	if v := strings.TrimSpace(input.Name); v != "" {
		cat.Name = v
	}
	if v := strings.TrimSpace(input.Breed); v != "" {
		cat.Breed = v
	}
	if input.AgeMonths > 0 {
		cat.AgeMonths = input.AgeMonths
	}
	if v := strings.TrimSpace(input.Sex); v != "" {
		cat.Sex = v
	}
	if v := strings.TrimSpace(input.Description); v != "" {
		cat.Description = v
	}
	if v := strings.TrimSpace(input.PhotoURL); v != "" {
		cat.PhotoURL = v
	}
	if adopted != nil {
		cat.Adopted = *adopted
	}
	cat.UpdatedAt = time.Now().UTC()

	if err := s.cats.Update(ctx, cat); err != nil {
		return domain.Cat{}, err
	}
	s.cache.InvalidateCats(ctx)
	return cat, nil
}

// MarkAdopted marca el gato como adoptado. Idempotente.
func (s *CatService) MarkAdopted(ctx context.Context, id string) error {
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat.Adopted {
		return nil
	}
	cat.Adopted = true
	cat.UpdatedAt = time.Now().UTC()
	if err := s.cats.Update(ctx, cat); err != nil {
		return err
	}
	s.cache.InvalidateCats(ctx)
	return nil
}

// DeleteCat elimina el gato e invalida el cache.
func (s *CatService) DeleteCat(ctx context.Context, id string) error {
	if err := s.cats.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateCats(ctx)
	return nil
}
