package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	"go.uber.org/zap"
)

// fallbackRepository keeps the last known place collection in a single
// redis key. It is read on remote-fetch failure only; ordinary writes never
// refresh it, so the slot intentionally lags the backend.
type fallbackRepository struct {
	client *redis.Client
	slot   string
	logger *zap.Logger
}

func NewFallbackRepository(r *Redis, slot string) repository.FallbackRepository {
	return &fallbackRepository{
		client: r.Client(),
		slot:   slot,
		logger: r.logger,
	}
}

func (r *fallbackRepository) Load(ctx context.Context) ([]domain.Place, error) {
	data, err := r.client.Get(ctx, r.slot).Bytes()
	if err == redis.Nil {
		return nil, nil // empty slot
	}
	if err != nil {
		r.logger.Error("Failed to read fallback slot", zap.String("slot", r.slot), zap.Error(err))
		return nil, fmt.Errorf("fallback load: %w", err)
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Fallback slot holds unreadable payload", zap.String("slot", r.slot), zap.Error(err))
		return nil, fmt.Errorf("fallback unmarshal: %w", err)
	}

	r.logger.Debug("Fallback slot read", zap.String("slot", r.slot), zap.Int("count", len(places)))
	return places, nil
}

func (r *fallbackRepository) Store(ctx context.Context, places []domain.Place) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("fallback marshal: %w", err)
	}

	// No TTL: the slot is recovery data, it must survive arbitrary downtime.
	if err := r.client.Set(ctx, r.slot, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write fallback slot", zap.String("slot", r.slot), zap.Error(err))
		return fmt.Errorf("fallback store: %w", err)
	}

	r.logger.Debug("Fallback slot written", zap.String("slot", r.slot), zap.Int("count", len(places)))
	return nil
}

func (r *fallbackRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.slot).Err(); err != nil {
		r.logger.Error("Failed to clear fallback slot", zap.String("slot", r.slot), zap.Error(err))
		return fmt.Errorf("fallback clear: %w", err)
	}
	return nil
}
