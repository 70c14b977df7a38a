// Package game is the orchestration layer: it loads campaigns from
// the repository, runs narration turns through the game-master engine,
// applies the resulting mutations and commits the campaign back.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mythictome/mythic-tome/internal/clients/gamemaster"
	"github.com/mythictome/mythic-tome/internal/dice"
	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/narrative"
	"github.com/mythictome/mythic-tome/internal/repositories/campaigns"
	"github.com/mythictome/mythic-tome/internal/uuid"
)

// Repository is an alias for the campaign repository interface
type Repository = campaigns.Repository

// Service defines the game service interface
type Service interface {
	// CreateCampaign creates a new campaign
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*campaign.Campaign, error)

	// GetCampaign retrieves a campaign by ID
	GetCampaign(ctx context.Context, id string) (*campaign.Campaign, error)

	// ListCampaigns lists all campaigns
	ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error)

	// UpdateCampaignSettings edits a campaign's name, description,
	// custom rules and difficulty
	UpdateCampaignSettings(ctx context.Context, input *UpdateCampaignSettingsInput) (*campaign.Campaign, error)

	// DeleteCampaign removes a campaign
	DeleteCampaign(ctx context.Context, id string) error

	// GetAppState retrieves the active campaign pointer and selected model
	GetAppState(ctx context.Context) (*campaigns.AppState, error)

	// SetActiveCampaign marks a campaign as the open one
	SetActiveCampaign(ctx context.Context, id string) error

	// SelectModel stores the narration model choice
	SelectModel(ctx context.Context, model string) error

	// SendMessage runs one narration turn for a campaign
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// RollDice rolls one die and records it in the campaign history
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// AddLogEntry saves a narration line into the shared game log
	AddLogEntry(ctx context.Context, campaignID, text string) (*campaign.LogEntry, error)

	// CreateCharacter rolls a new hero into a campaign's party
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// RemoveCharacter drops a hero from the party
	RemoveCharacter(ctx context.Context, campaignID, characterID string) error

	// AddItem adds an item or spell to a hero's inventory
	AddItem(ctx context.Context, input *AddItemInput) (*character.InventoryItem, error)

	// RemoveItem decrements or removes an inventory entry
	RemoveItem(ctx context.Context, input *RemoveItemInput) error

	// EquipItem equips an inventory item into its declared slot
	EquipItem(ctx context.Context, input *EquipItemInput) error

	// UnequipItem empties an equipment slot
	UnequipItem(ctx context.Context, input *UnequipItemInput) error

	// TogglePrepared flips a spell's prepared flag
	TogglePrepared(ctx context.Context, input *TogglePreparedInput) (*character.InventoryItem, error)

	// AdjustSpellSlot spends or restores one spell slot
	AdjustSpellSlot(ctx context.Context, input *AdjustSpellSlotInput) error

	// SetCurrentHP sets a hero's current hit points
	SetCurrentHP(ctx context.Context, input *SetCurrentHPInput) error

	// SetAttribute overwrites one ability score
	SetAttribute(ctx context.Context, input *SetAttributeInput) error

	// UpdateNotes replaces a hero's notes
	UpdateNotes(ctx context.Context, input *UpdateNotesInput) error

	// SelectAbilityChoice records a choice on one of a hero's abilities
	SelectAbilityChoice(ctx context.Context, input *SelectAbilityChoiceInput) error

	// ExportCampaign serializes a campaign for download
	ExportCampaign(ctx context.Context, id string) ([]byte, error)

	// ImportCampaign stores an uploaded campaign, re-identifying it on
	// ID collision
	ImportCampaign(ctx context.Context, data []byte) (*campaign.Campaign, error)

	// ExportHeroes serializes a campaign's party for download
	ExportHeroes(ctx context.Context, campaignID string) ([]byte, error)

	// ImportHeroes appends uploaded heroes to a campaign's party with
	// fresh IDs
	ImportHeroes(ctx context.Context, campaignID string, data []byte) ([]*character.Character, error)
}

// CreateCampaignInput contains the settings for a new campaign
type CreateCampaignInput struct {
	Name        string
	Description string
	CustomRules string
	Difficulty  shared.Difficulty
}

// UpdateCampaignSettingsInput edits campaign settings. Nil fields are
// left unchanged.
type UpdateCampaignSettingsInput struct {
	CampaignID  string
	Name        *string
	Description *string
	CustomRules *string
	Difficulty  *shared.Difficulty
}

// SendMessageInput is one player utterance
type SendMessageInput struct {
	CampaignID string
	Text       string
}

// SendMessageOutput carries the transcript entries this turn appended:
// the player's message, any mutation notices and the narration prose
// (or the fallback line when the engine was unreachable).
type SendMessageOutput struct {
	Messages []*campaign.Message
	Campaign *campaign.Campaign
}

// RollDiceInput asks for one die roll
type RollDiceInput struct {
	CampaignID string
	Die        int
}

// RollDiceOutput carries the roll and its history entry
type RollDiceOutput struct {
	Result *dice.RollResult
	Roll   *campaign.DiceRoll
}

// CreateCharacterInput contains all data needed to create a hero
type CreateCharacterInput struct {
	CampaignID string
	Name       string
	Race       string
	Class      string
	Background string
	Stats      map[shared.Attribute]int
}

// AddItemInput adds an item or spell to a hero's inventory
type AddItemInput struct {
	CampaignID  string
	CharacterID string
	Name        string
	Quantity    int
	Kind        character.ItemKind
	Description string
	Properties  *shared.ItemProperties
	EquipSlot   shared.Slot
}

// RemoveItemInput decrements an inventory entry by name
type RemoveItemInput struct {
	CampaignID  string
	CharacterID string
	ItemName    string
	Quantity    int
}

// EquipItemInput equips an inventory item
type EquipItemInput struct {
	CampaignID  string
	CharacterID string
	ItemID      string
}

// UnequipItemInput empties one slot
type UnequipItemInput struct {
	CampaignID  string
	CharacterID string
	Slot        shared.Slot
}

// TogglePreparedInput flips a spell's prepared flag
type TogglePreparedInput struct {
	CampaignID  string
	CharacterID string
	ItemID      string
}

// AdjustSpellSlotInput spends (negative delta) or restores one slot level
type AdjustSpellSlotInput struct {
	CampaignID  string
	CharacterID string
	Level       int
	Delta       int
}

// SetCurrentHPInput sets current hit points
type SetCurrentHPInput struct {
	CampaignID  string
	CharacterID string
	HP          int
}

// SetAttributeInput overwrites one ability score
type SetAttributeInput struct {
	CampaignID  string
	CharacterID string
	Attribute   shared.Attribute
	Score       int
}

// UpdateNotesInput replaces a hero's notes
type UpdateNotesInput struct {
	CampaignID  string
	CharacterID string
	Notes       string
}

// SelectAbilityChoiceInput records an option for an ability choice
type SelectAbilityChoiceInput struct {
	CampaignID  string
	CharacterID string
	AbilityID   string
	ChoiceID    string
	Option      string
}

type service struct {
	repository Repository
	engine     gamemaster.Client
	roller     dice.Roller
	applier    *narrative.Applier
	idGen      uuid.Generator
	log        zerolog.Logger
	now        func() int64

	mu   sync.Mutex
	busy map[string]bool
}

// Config holds the service dependencies
type Config struct {
	Repository Repository
	Engine     gamemaster.Client
	Roller     dice.Roller
	IDGen      uuid.Generator
	Logger     zerolog.Logger
}

// New creates the game service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, mterr.InvalidArgument("cfg is required")
	}
	if cfg.Repository == nil {
		return nil, mterr.InvalidArgument("cfg.Repository is required")
	}
	if cfg.Engine == nil {
		return nil, mterr.InvalidArgument("cfg.Engine is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	idGen := cfg.IDGen
	if idGen == nil {
		idGen = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		repository: cfg.Repository,
		engine:     cfg.Engine,
		roller:     roller,
		applier:    narrative.NewApplier(cfg.Logger),
		idGen:      idGen,
		log:        cfg.Logger,
		now:        func() int64 { return time.Now().UnixMilli() },
		busy:       make(map[string]bool),
	}, nil
}
