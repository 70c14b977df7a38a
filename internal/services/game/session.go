package game

import (
	"context"
	"strings"

	"github.com/mythictome/mythic-tome/internal/clients/gamemaster"
	"github.com/mythictome/mythic-tome/internal/dice"
	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/narrative"
)

// FallbackText is appended when the narration engine could not be
// reached. The turn commits the player's message but mutates nothing.
const FallbackText = "Spojenie s herným svetom bolo prerušené. Skús to znova."

func (s *service) acquireTurn(campaignID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[campaignID] {
		return false
	}
	s.busy[campaignID] = true
	return true
}

func (s *service) releaseTurn(campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, campaignID)
}

// SendMessage runs one narration turn: append the player's message,
// ask the engine, apply any mutation batch against a party snapshot,
// commit once. A campaign accepts one outstanding turn at a time.
func (s *service) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, mterr.InvalidArgument("message text is required")
	}

	if !s.acquireTurn(input.CampaignID) {
		return nil, mterr.Unavailable("a narration turn for this campaign is already running")
	}
	defer s.releaseTurn(input.CampaignID)

	c, err := s.repository.Get(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	state, err := s.repository.GetAppState(ctx)
	if err != nil {
		return nil, err
	}

	history := c.Messages
	userText := strings.TrimSpace(input.Text)

	var appended []*campaign.Message
	record := func(role shared.MessageRole, text string) {
		c.AppendMessage(role, text)
		appended = append(appended, c.Messages[len(c.Messages)-1])
	}
	record(shared.RoleUser, userText)

	resp, err := s.engine.Narrate(ctx, &gamemaster.NarrateInput{
		Model:        state.SelectedModel,
		SystemPrompt: narrative.SystemPrompt(c),
		History:      history,
		UserPrompt:   userText,
	})
	if err != nil {
		s.log.Error().Err(err).Str("campaign_id", c.ID).Msg("narration failed")
		record(shared.RoleModel, FallbackText)
	} else {
		if len(resp.Calls) > 0 {
			snapshot := c.CloneParty()
			notices := s.applier.Apply(snapshot, resp.Calls)
			c.ReplaceParty(snapshot)
			for _, notice := range notices {
				record(shared.RoleSystem, notice)
			}
		}
		if resp.Text != "" {
			record(shared.RoleModel, resp.Text)
		}
	}

	c.Touch(s.now())
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	return &SendMessageOutput{Messages: appended, Campaign: c}, nil
}

// RollDice rolls one die and records it in the campaign history
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}
	if !dice.Supported(input.Die) {
		return nil, mterr.InvalidArgumentf("unsupported die d%d", input.Die)
	}

	c, err := s.repository.Get(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	result, err := s.roller.RollDie(input.Die)
	if err != nil {
		return nil, err
	}

	roll := c.RecordRoll(input.Die, result.Total, s.now())
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	return &RollDiceOutput{Result: result, Roll: roll}, nil
}

// AddLogEntry saves a narration line into the shared game log. A
// duplicate line is dropped without error.
func (s *service) AddLogEntry(ctx context.Context, campaignID, text string) (*campaign.LogEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, mterr.InvalidArgument("log text is required")
	}

	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	entry := c.AddLogEntry(text, s.now())
	if entry == nil {
		return nil, nil
	}

	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}
	return entry, nil
}
