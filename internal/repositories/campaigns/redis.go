package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

const (
	campaignIndexKey = "campaigns"
	appStateKey      = "appstate"
)

// campaignData is the serialized form of a campaign in Redis.
type campaignData struct {
	*campaign.Campaign
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed campaign repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: cfg.Client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("campaign:%s", id)
}

// Create stores a new campaign
func (r *redisRepo) Create(ctx context.Context, c *campaign.Campaign) error {
	if c == nil {
		return mterr.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(c.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check campaign existence: %w", err)
	}
	if exists > 0 {
		return mterr.AlreadyExistsf("campaign with ID '%s' already exists", c.ID).
			WithMeta("campaign_id", c.ID)
	}

	now := time.Now().UTC()
	return r.write(ctx, c, now, now)
}

// Get retrieves a campaign by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	if id == "" {
		return nil, mterr.InvalidArgument("campaign ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, mterr.NotFoundf("campaign with ID '%s' not found", id).
			WithMeta("campaign_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	data := campaignData{Campaign: &campaign.Campaign{}}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	return data.Campaign, nil
}

// List retrieves all stored campaigns
func (r *redisRepo) List(ctx context.Context) ([]*campaign.Campaign, error) {
	ids, err := r.client.SMembers(ctx, campaignIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign IDs: %w", err)
	}

	campaigns := make([]*campaign.Campaign, 0, len(ids))
	for _, id := range ids {
		c, err := r.Get(ctx, id)
		if err != nil {
			// Skip campaigns that can't be loaded
			continue
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// Update overwrites an existing campaign
func (r *redisRepo) Update(ctx context.Context, c *campaign.Campaign) error {
	if c == nil {
		return mterr.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(c.ID)).Result()
	if err == redis.Nil {
		return mterr.NotFoundf("campaign with ID '%s' not found", c.ID).
			WithMeta("campaign_id", c.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to check campaign existence: %w", err)
	}

	existing := campaignData{Campaign: &campaign.Campaign{}}
	if err := json.Unmarshal([]byte(jsonData), &existing); err != nil {
		return fmt.Errorf("failed to unmarshal campaign: %w", err)
	}

	return r.write(ctx, c, existing.CreatedAt, time.Now().UTC())
}

func (r *redisRepo) write(ctx context.Context, c *campaign.Campaign, createdAt, updatedAt time.Time) error {
	data := campaignData{
		Campaign:  c,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(c.ID), jsonData, 0)
	pipe.SAdd(ctx, campaignIndexKey, c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store campaign: %w", err)
	}
	return nil
}

// Delete removes a campaign
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if deleted == 0 {
		return mterr.NotFoundf("campaign with ID '%s' not found", id).
			WithMeta("campaign_id", id)
	}

	if err := r.client.SRem(ctx, campaignIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to remove campaign from index: %w", err)
	}
	return nil
}

// GetAppState retrieves the app-level state
func (r *redisRepo) GetAppState(ctx context.Context) (*AppState, error) {
	jsonData, err := r.client.Get(ctx, appStateKey).Result()
	if err == redis.Nil {
		return &AppState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app state: %w", err)
	}

	var state AppState
	if err := json.Unmarshal([]byte(jsonData), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal app state: %w", err)
	}
	return &state, nil
}

// SetAppState overwrites the app-level state
func (r *redisRepo) SetAppState(ctx context.Context, state *AppState) error {
	if state == nil {
		return mterr.InvalidArgument("state cannot be nil")
	}

	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal app state: %w", err)
	}
	if err := r.client.Set(ctx, appStateKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store app state: %w", err)
	}
	return nil
}
