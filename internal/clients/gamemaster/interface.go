package gamemaster

import (
	"context"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/narrative"
)

// Models the engine can run with.
const (
	ModelFlash = "gemini-3-flash-preview"
	ModelPro   = "gemini-3-pro-preview"
)

// DefaultModel is used when no model was selected.
const DefaultModel = ModelFlash

// KnownModel reports whether the id is one the engine supports.
func KnownModel(id string) bool {
	return id == ModelFlash || id == ModelPro
}

// NarrateInput is one narration turn: the system instruction built for
// the campaign, the transcript so far and the player's new utterance.
type NarrateInput struct {
	Model        string
	SystemPrompt string
	History      []*campaign.Message
	UserPrompt   string
}

// Response is the engine's reply: narrative prose and zero or more
// mutation tool calls.
type Response struct {
	Text  string
	Calls []narrative.RawCall
}

// Client is the game-master narration engine.
type Client interface {
	Narrate(ctx context.Context, input *NarrateInput) (*Response, error)
}
