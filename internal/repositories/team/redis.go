package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/fastbreak/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	teamKeyPrefix = "team:"
	teamIndexKey  = "teams" // set of all team IDs
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// SaveTeam persists a team and adds it to the league index
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}
	if input.Team.ID == "" {
		return errors.New("team must carry an ID")
	}

	teamJSON, err := json.Marshal(input.Team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, input.Team.ID), teamJSON, 0)
	pipe.SAdd(ctx, teamIndexKey, input.Team.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// GetTeam retrieves a team by ID
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be nil")
	}

	teamJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, input.TeamID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// ListTeams retrieves every saved team, ordered by ID
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, teamIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	sort.Strings(ids)

	teams := make([]*models.Team, 0, len(ids))
	for _, id := range ids {
		team, err := r.GetTeam(ctx, &GetTeamInput{TeamID: id})
		if err != nil {
			// A dangling index entry is skipped, not fatal
			if errors.Is(err, ErrTeamNotFound) {
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}

	return &ListTeamsOutput{Teams: teams}, nil
}

// DeleteTeam removes a team and its index entry
func (r *redisRepository) DeleteTeam(ctx context.Context, input *DeleteTeamInput) error {
	if input == nil || input.TeamID == "" {
		return errors.New("input and team ID cannot be nil")
	}

	deleted, err := r.client.Del(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, input.TeamID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if deleted == 0 {
		return ErrTeamNotFound
	}

	if err := r.client.SRem(ctx, teamIndexKey, input.TeamID).Err(); err != nil {
		return fmt.Errorf("failed to unindex team: %w", err)
	}

	return nil
}
