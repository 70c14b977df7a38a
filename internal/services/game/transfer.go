package game

import (
	"context"
	"encoding/json"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// ExportCampaign serializes a campaign for download.
func (s *service) ExportCampaign(ctx context.Context, id string) ([]byte, error) {
	c, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(c, "", "  ")
}

// ImportCampaign stores an uploaded campaign. An id collision with an
// existing campaign gets a fresh id so the upload never overwrites.
func (s *service) ImportCampaign(ctx context.Context, data []byte) (*campaign.Campaign, error) {
	var c campaign.Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, mterr.WrapWithCode(err, mterr.CodeInvalidArgument, "campaign file is not valid JSON")
	}
	if c.Name == "" {
		return nil, mterr.InvalidArgument("campaign file is missing a name")
	}
	if c.Difficulty == "" {
		c.Difficulty = shared.DifficultyModerate
	}
	if !c.Difficulty.Valid() {
		return nil, mterr.InvalidArgumentf("campaign file has unknown difficulty %q", c.Difficulty)
	}
	if c.Party == nil {
		c.Party = []*character.Character{}
	}

	if c.ID == "" {
		c.ID = s.idGen.New()
	} else if existing, err := s.repository.Get(ctx, c.ID); err == nil && existing != nil {
		c.ID = s.idGen.New()
	}

	if err := s.repository.Create(ctx, &c); err != nil {
		return nil, err
	}

	s.log.Info().Str("campaign_id", c.ID).Str("name", c.Name).Msg("campaign imported")
	return &c, nil
}

// ExportHeroes serializes a campaign's party for download.
func (s *service) ExportHeroes(ctx context.Context, campaignID string) ([]byte, error) {
	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(c.Party, "", "  ")
}

// ImportHeroes appends uploaded heroes to a campaign's party. Every
// hero gets a fresh id so repeated imports never collide.
func (s *service) ImportHeroes(ctx context.Context, campaignID string, data []byte) ([]*character.Character, error) {
	var heroes []*character.Character
	if err := json.Unmarshal(data, &heroes); err != nil {
		return nil, mterr.WrapWithCode(err, mterr.CodeInvalidArgument, "hero file is not valid JSON")
	}
	if len(heroes) == 0 {
		return nil, mterr.InvalidArgument("hero file contains no heroes")
	}
	if heroes[0].Name == "" || len(heroes[0].Stats) == 0 {
		return nil, mterr.InvalidArgument("hero file is missing names or stats")
	}

	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	for _, hero := range heroes {
		hero.ID = s.idGen.New()
		if hero.Inventory == nil {
			hero.Inventory = []*character.InventoryItem{}
		}
		if hero.EquippedItems == nil {
			hero.EquippedItems = map[shared.Slot]string{}
		}
		if err := c.AddCharacter(hero); err != nil {
			return nil, err
		}
	}

	c.Touch(s.now())
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Str("campaign_id", campaignID).Int("count", len(heroes)).Msg("heroes imported")
	return heroes, nil
}
