package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"adopta-gatos/internal/domain"
)

const (
	catsListKey        = "cats:list"
	catsItemPrefix     = "cats:item:"
	requestsListKey    = "requests:list"
	requestsItemPrefix = "requests:item:"
)

// envelope envuelve todo payload cacheado. Con el marcador explícito una
// lista vacía es un hit válido y no se confunde con una clave ausente.
type envelope[T any] struct {
	Present bool `json:"present"`
	Data    T    `json:"data"`
}

func getJSON[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var env envelope[T]
	raw, ok := s.Get(ctx, key)
	if !ok {
		return env.Data, false
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		s.logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return env.Data, false
	}
	if !env.Present {
		return env.Data, false
	}
	return env.Data, true
}

func setJSON[T any](ctx context.Context, s *Store, key string, value T, ttl time.Duration) {
	raw, err := json.Marshal(envelope[T]{Present: true, Data: value})
	if err != nil {
		s.logger.Warn("cache payload marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.Set(ctx, key, raw, ttl)
}

// EntityCache compone el Store con las claves y TTLs por entidad.
type EntityCache struct {
	store *Store

	catsListTTL     time.Duration
	catsItemTTL     time.Duration
	requestsListTTL time.Duration
	requestsItemTTL time.Duration
}

func NewEntityCache(store *Store, catsListTTL, catsItemTTL, requestsListTTL, requestsItemTTL time.Duration) *EntityCache {
	return &EntityCache{
		store:           store,
		catsListTTL:     catsListTTL,
		catsItemTTL:     catsItemTTL,
		requestsListTTL: requestsListTTL,
		requestsItemTTL: requestsItemTTL,
	}
}

func (c *EntityCache) GetCats(ctx context.Context) ([]domain.Cat, bool) {
	return getJSON[[]domain.Cat](ctx, c.store, catsListKey)
}

func (c *EntityCache) SetCats(ctx context.Context, cats []domain.Cat) {
	setJSON(ctx, c.store, catsListKey, cats, c.catsListTTL)
}

func (c *EntityCache) GetCat(ctx context.Context, id string) (domain.Cat, bool) {
	return getJSON[domain.Cat](ctx, c.store, catsItemPrefix+id)
}

func (c *EntityCache) SetCat(ctx context.Context, cat domain.Cat) {
	setJSON(ctx, c.store, catsItemPrefix+cat.ID, cat, c.catsItemTTL)
}

// InvalidateCats borra la lista y todos los items de gatos. Se invoca tras
// cada mutación exitosa para que la próxima lectura repueble desde el store.
func (c *EntityCache) InvalidateCats(ctx context.Context) {
	c.store.Del(ctx, catsListKey)
	c.store.DelPattern(ctx, catsItemPrefix+"*")
}

func (c *EntityCache) GetRequests(ctx context.Context) ([]domain.AdoptionRequest, bool) {
	return getJSON[[]domain.AdoptionRequest](ctx, c.store, requestsListKey)
}

func (c *EntityCache) SetRequests(ctx context.Context, reqs []domain.AdoptionRequest) {
	setJSON(ctx, c.store, requestsListKey, reqs, c.requestsListTTL)
}

func (c *EntityCache) GetRequest(ctx context.Context, id string) (domain.AdoptionRequest, bool) {
	return getJSON[domain.AdoptionRequest](ctx, c.store, requestsItemPrefix+id)
}

func (c *EntityCache) SetRequest(ctx context.Context, req domain.AdoptionRequest) {
	setJSON(ctx, c.store, requestsItemPrefix+req.ID, req, c.requestsItemTTL)
}

func (c *EntityCache) InvalidateRequests(ctx context.Context) {
	c.store.Del(ctx, requestsListKey)
	c.store.DelPattern(ctx, requestsItemPrefix+"*")
}
