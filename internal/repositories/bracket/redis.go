package bracket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fastbreak/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	bracketKeyPrefix = "bracket:"
)

// ErrBracketNotFound is returned when a season has no bracket
var ErrBracketNotFound = errors.New("bracket not found")

// Config holds configuration for the Redis bracket repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed bracket repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveBracket persists the bracket snapshot, replacing any prior one
func (r *redisRepository) SaveBracket(ctx context.Context, input *SaveBracketInput) error {
	if input == nil || input.Bracket == nil {
		return errors.New("input and bracket cannot be nil")
	}
	if input.Bracket.SeasonID == "" {
		return errors.New("bracket must carry a season ID")
	}

	bracketJSON, err := json.Marshal(input.Bracket)
	if err != nil {
		return fmt.Errorf("failed to marshal bracket: %w", err)
	}

	key := fmt.Sprintf("%s%s", bracketKeyPrefix, input.Bracket.SeasonID)
	if err := r.client.Set(ctx, key, bracketJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bracket: %w", err)
	}

	return nil
}

// GetBracket retrieves a season's bracket snapshot
func (r *redisRepository) GetBracket(ctx context.Context, input *GetBracketInput) (*models.PlayoffBracket, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be nil")
	}

	key := fmt.Sprintf("%s%s", bracketKeyPrefix, input.SeasonID)
	bracketJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBracketNotFound
		}
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	var b models.PlayoffBracket
	if err := json.Unmarshal([]byte(bracketJSON), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bracket: %w", err)
	}

	return &b, nil
}

// DeleteBracket removes a season's bracket
func (r *redisRepository) DeleteBracket(ctx context.Context, input *DeleteBracketInput) error {
	if input == nil || input.SeasonID == "" {
		return errors.New("input and season ID cannot be nil")
	}

	key := fmt.Sprintf("%s%s", bracketKeyPrefix, input.SeasonID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete bracket: %w", err)
	}
	if deleted == 0 {
		return ErrBracketNotFound
	}

	return nil
}
