package game

import (
	"context"

	"github.com/mythictome/mythic-tome/internal/clients/gamemaster"
	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/repositories/campaigns"
)

// CreateCampaign creates a new campaign
func (s *service) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*campaign.Campaign, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	c, err := campaign.New(&campaign.CreateInput{
		Name:        input.Name,
		Description: input.Description,
		CustomRules: input.CustomRules,
		Difficulty:  input.Difficulty,
		IDGenerator: s.idGen,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Str("campaign_id", c.ID).Str("name", c.Name).Msg("campaign created")
	return c, nil
}

// GetCampaign retrieves a campaign by ID
func (s *service) GetCampaign(ctx context.Context, id string) (*campaign.Campaign, error) {
	return s.repository.Get(ctx, id)
}

// ListCampaigns lists all campaigns
func (s *service) ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error) {
	return s.repository.List(ctx)
}

// UpdateCampaignSettings edits a campaign's settings
func (s *service) UpdateCampaignSettings(ctx context.Context, input *UpdateCampaignSettingsInput) (*campaign.Campaign, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	c, err := s.repository.Get(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, mterr.InvalidArgument("campaign name cannot be empty")
		}
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.CustomRules != nil {
		c.CustomRules = *input.CustomRules
	}
	if input.Difficulty != nil {
		if !input.Difficulty.Valid() {
			return nil, mterr.InvalidArgumentf("unknown difficulty %q", *input.Difficulty)
		}
		c.Difficulty = *input.Difficulty
	}

	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCampaign removes a campaign. When it was the active one, the
// pointer is cleared too.
func (s *service) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	state, err := s.repository.GetAppState(ctx)
	if err != nil {
		return err
	}
	if state.ActiveCampaignID == id {
		state.ActiveCampaignID = ""
		if err := s.repository.SetAppState(ctx, state); err != nil {
			return err
		}
	}
	return nil
}

// GetAppState retrieves the active campaign pointer and selected model
func (s *service) GetAppState(ctx context.Context) (*campaigns.AppState, error) {
	return s.repository.GetAppState(ctx)
}

// SetActiveCampaign marks a campaign as the open one and bumps its
// last-played stamp.
func (s *service) SetActiveCampaign(ctx context.Context, id string) error {
	c, err := s.repository.Get(ctx, id)
	if err != nil {
		return err
	}

	c.Touch(s.now())
	if err := s.repository.Update(ctx, c); err != nil {
		return err
	}

	state, err := s.repository.GetAppState(ctx)
	if err != nil {
		return err
	}
	state.ActiveCampaignID = id
	return s.repository.SetAppState(ctx, state)
}

// SelectModel stores the narration model choice
func (s *service) SelectModel(ctx context.Context, model string) error {
	if !gamemaster.KnownModel(model) {
		return mterr.InvalidArgumentf("unknown model %q", model)
	}

	state, err := s.repository.GetAppState(ctx)
	if err != nil {
		return err
	}
	state.SelectedModel = model
	return s.repository.SetAppState(ctx, state)
}
