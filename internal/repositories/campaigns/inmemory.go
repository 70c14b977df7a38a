package campaigns

import (
	"context"
	"sync"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// inMemoryRepo implements Repository with a mutex-guarded map. Used
// when no Redis is configured and in service tests.
type inMemoryRepo struct {
	mu        sync.RWMutex
	campaigns map[string]*campaign.Campaign
	appState  AppState
}

// NewInMemory creates an empty in-memory campaign repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		campaigns: make(map[string]*campaign.Campaign),
	}
}

// Create stores a new campaign
func (r *inMemoryRepo) Create(_ context.Context, c *campaign.Campaign) error {
	if c == nil {
		return mterr.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.ID]; ok {
		return mterr.AlreadyExistsf("campaign with ID '%s' already exists", c.ID)
	}
	r.campaigns[c.ID] = c.Clone()
	return nil
}

// Get retrieves a campaign by ID
func (r *inMemoryRepo) Get(_ context.Context, id string) (*campaign.Campaign, error) {
	if id == "" {
		return nil, mterr.InvalidArgument("campaign ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, mterr.NotFoundf("campaign with ID '%s' not found", id)
	}
	return c.Clone(), nil
}

// List retrieves all stored campaigns
func (r *inMemoryRepo) List(_ context.Context) ([]*campaign.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := make([]*campaign.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		campaigns = append(campaigns, c.Clone())
	}
	return campaigns, nil
}

// Update overwrites an existing campaign
func (r *inMemoryRepo) Update(_ context.Context, c *campaign.Campaign) error {
	if c == nil {
		return mterr.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.ID]; !ok {
		return mterr.NotFoundf("campaign with ID '%s' not found", c.ID)
	}
	r.campaigns[c.ID] = c.Clone()
	return nil
}

// Delete removes a campaign
func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	if id == "" {
		return mterr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return mterr.NotFoundf("campaign with ID '%s' not found", id)
	}
	delete(r.campaigns, id)
	return nil
}

// GetAppState retrieves the app-level state
func (r *inMemoryRepo) GetAppState(_ context.Context) (*AppState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := r.appState
	return &state, nil
}

// SetAppState overwrites the app-level state
func (r *inMemoryRepo) SetAppState(_ context.Context, state *AppState) error {
	if state == nil {
		return mterr.InvalidArgument("state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appState = *state
	return nil
}
