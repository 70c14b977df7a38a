// Package campaigns persists campaign aggregates and the small piece
// of application state that points at the active campaign.
package campaigns

import (
	"context"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
)

// AppState is the single app-level record: which campaign is open and
// which narration model the table selected.
type AppState struct {
	ActiveCampaignID string `json:"activeCampaignId"`
	SelectedModel    string `json:"selectedModel"`
}

// Repository defines the interface for campaign persistence
type Repository interface {
	// Create stores a new campaign
	Create(ctx context.Context, c *campaign.Campaign) error

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*campaign.Campaign, error)

	// List retrieves all stored campaigns
	List(ctx context.Context) ([]*campaign.Campaign, error)

	// Update overwrites an existing campaign
	Update(ctx context.Context, c *campaign.Campaign) error

	// Delete removes a campaign
	Delete(ctx context.Context, id string) error

	// GetAppState retrieves the app-level state. A missing record
	// returns an empty state, not an error.
	GetAppState(ctx context.Context) (*AppState, error)

	// SetAppState overwrites the app-level state
	SetAppState(ctx context.Context, state *AppState) error
}
