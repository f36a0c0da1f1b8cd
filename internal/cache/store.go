package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store es una capa clave/valor sobre Redis con política fail-open:
// cualquier error de transporte se loguea y se degrada a miss o no-op.
// El cache es una optimización, nunca una dependencia de corrección.
type Store struct {
	client  *redis.Client
	logger  *zap.Logger
	timeout time.Duration
}

func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{
		client:  client,
		logger:  logger,
		timeout: 500 * time.Millisecond,
	}
}

// Get devuelve el valor crudo y true en hit; false en miss o error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil || s.client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

// Set guarda el valor con TTL. Un fallo de escritura no afecta al caller.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if s == nil || s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Del elimina una clave puntual.
func (s *Store) Del(ctx context.Context, keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache del failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// DelPattern elimina todas las claves que matchean el patrón vía SCAN.
func (s *Store) DelPattern(ctx context.Context, pattern string) {
	if s == nil || s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("cache scan failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache del failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
