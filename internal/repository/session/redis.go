package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

const keyPrefix = "widget:"

// RedisStore keeps sessions as JSON values with a sliding TTL.
type RedisStore struct {
	client     *redis.Client
	logger     zerolog.Logger
	expiration time.Duration
}

func NewRedisStore(client *redis.Client, logger zerolog.Logger, expiration time.Duration) *RedisStore {
	return &RedisStore{client: client, logger: logger, expiration: expiration}
}

func (s *RedisStore) Save(ctx context.Context, id string, state models.WidgetState) error {
	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("failed to marshal widget state")
		return err
	}

	if err := s.client.Set(ctx, keyPrefix+id, data, s.expiration).Err(); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("session", id).
			Err(err).
			Msg("session write failed")
		return err
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (models.WidgetState, error) {
	data, err := s.client.GetEx(ctx, keyPrefix+id, s.expiration).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.WidgetState{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("session", id).
			Err(err).
			Msg("session read failed")
		return models.WidgetState{}, err
	}

	var state models.WidgetState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("session", id).
			Err(err).
			Msg("failed to unmarshal widget state")
		return models.WidgetState{}, fmt.Errorf("unmarshal: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("session", id).
			Err(err).
			Msg("session delete failed")
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
