// Package campaign holds the narrative-session aggregate: the party,
// the dungeon-master transcript, the dice history and the shared game
// log of one campaign.
package campaign

import (
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/uuid"
)

// diceHistoryLimit caps the stored roll history; older rolls fall off
// the end.
const diceHistoryLimit = 50

// WelcomeText opens every new campaign transcript.
const WelcomeText = "Vitajte v temnom kraji, cestovatelia. Váš príbeh začína práve teraz."

// Message is one transcript entry. Role "model" carries narrative
// replies; the notices emitted by mutation handling use role "system".
type Message struct {
	Role shared.MessageRole `json:"role"`
	Text string             `json:"text"`
}

// DiceRoll is one recorded die roll. Timestamp is unix milliseconds.
type DiceRoll struct {
	ID        string `json:"id"`
	Die       int    `json:"die"`
	Result    int    `json:"result"`
	Timestamp int64  `json:"timestamp"`
}

// LogEntry is one line of the shared game log.
type LogEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Text      string `json:"text"`
}

// Campaign is the aggregate for one table: settings, party and all
// session history. DiceHistory and GameLog are ordered most recent
// first.
type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastPlayed  int64  `json:"lastPlayed"`
	Description string `json:"description"`
	CustomRules string `json:"customRules"`

	RulesPDFName    string `json:"rulesPdfName,omitempty"`
	CampaignPDFName string `json:"campaignPdfName,omitempty"`

	Party       []*character.Character `json:"party"`
	Messages    []*Message             `json:"messages"`
	DiceHistory []*DiceRoll            `json:"diceHistory"`
	GameLog     []*LogEntry            `json:"gameLog"`

	Difficulty shared.Difficulty `json:"difficulty"`

	idGen uuid.Generator
}

// CreateInput carries the settings for a new campaign.
type CreateInput struct {
	Name        string
	Description string
	CustomRules string
	Difficulty  shared.Difficulty

	IDGenerator uuid.Generator
}

// New builds an empty campaign with the welcome message as its first
// transcript entry. Difficulty defaults to moderate.
func New(input *CreateInput, now int64) (*Campaign, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, mterr.InvalidArgument("campaign name is required")
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = shared.DifficultyModerate
	}
	if !difficulty.Valid() {
		return nil, mterr.InvalidArgumentf("unknown difficulty %q", difficulty)
	}

	gen := input.IDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Campaign{
		ID:          gen.New(),
		Name:        strings.TrimSpace(input.Name),
		LastPlayed:  now,
		Description: input.Description,
		CustomRules: input.CustomRules,
		Party:       []*character.Character{},
		Messages: []*Message{
			{Role: shared.RoleModel, Text: WelcomeText},
		},
		DiceHistory: []*DiceRoll{},
		GameLog:     []*LogEntry{},
		Difficulty:  difficulty,
		idGen:       gen,
	}, nil
}

// WithIDGenerator sets a custom id generator (for testing)
func (c *Campaign) WithIDGenerator(gen uuid.Generator) *Campaign {
	c.idGen = gen
	return c
}

func (c *Campaign) getIDGenerator() uuid.Generator {
	if c.idGen == nil {
		c.idGen = uuid.NewGoogleUUIDGenerator()
	}
	return c.idGen
}

// Touch updates the last-played stamp.
func (c *Campaign) Touch(now int64) {
	c.LastPlayed = now
}

// AppendMessage adds one transcript entry at the end.
func (c *Campaign) AppendMessage(role shared.MessageRole, text string) {
	c.Messages = append(c.Messages, &Message{Role: role, Text: text})
}

// RecordRoll prepends a roll to the history, trimming to the limit,
// and returns the new entry.
func (c *Campaign) RecordRoll(die, result int, now int64) *DiceRoll {
	roll := &DiceRoll{
		ID:        c.getIDGenerator().New(),
		Die:       die,
		Result:    result,
		Timestamp: now,
	}

	history := make([]*DiceRoll, 0, len(c.DiceHistory)+1)
	history = append(history, roll)
	rest := c.DiceHistory
	if len(rest) > diceHistoryLimit-1 {
		rest = rest[:diceHistoryLimit-1]
	}
	c.DiceHistory = append(history, rest...)
	return roll
}

// AddLogEntry prepends a line to the game log and bumps the
// last-played stamp. A line whose text already appears anywhere in the
// log is dropped, returning nil; saving the same narration twice is a
// common double-click.
func (c *Campaign) AddLogEntry(text string, now int64) *LogEntry {
	for _, entry := range c.GameLog {
		if entry.Text == text {
			return nil
		}
	}

	entry := &LogEntry{
		ID:        c.getIDGenerator().New(),
		Timestamp: now,
		Text:      text,
	}
	c.GameLog = append([]*LogEntry{entry}, c.GameLog...)
	c.LastPlayed = now
	return entry
}

// ClearSessionHistory empties the dice history and game log. Used when
// a campaign restarts with a fresh party.
func (c *Campaign) ClearSessionHistory() {
	c.DiceHistory = []*DiceRoll{}
	c.GameLog = []*LogEntry{}
}

// Clone returns a deep copy of the campaign.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Party = c.CloneParty()

	clone.Messages = make([]*Message, len(c.Messages))
	for i, msg := range c.Messages {
		m := *msg
		clone.Messages[i] = &m
	}

	clone.DiceHistory = make([]*DiceRoll, len(c.DiceHistory))
	for i, roll := range c.DiceHistory {
		r := *roll
		clone.DiceHistory[i] = &r
	}

	clone.GameLog = make([]*LogEntry, len(c.GameLog))
	for i, entry := range c.GameLog {
		e := *entry
		clone.GameLog[i] = &e
	}

	return &clone
}

// FindCharacter returns the party member matching the name
// case-insensitively, nil if absent.
func (c *Campaign) FindCharacter(name string) *character.Character {
	for _, member := range c.Party {
		if strings.EqualFold(member.Name, name) {
			return member
		}
	}
	return nil
}

// FindCharacterByID returns the party member with the given id, nil if
// absent.
func (c *Campaign) FindCharacterByID(id string) *character.Character {
	for _, member := range c.Party {
		if member.ID == id {
			return member
		}
	}
	return nil
}

// AddCharacter appends a hero to the party.
func (c *Campaign) AddCharacter(member *character.Character) error {
	if member == nil {
		return mterr.InvalidArgument("character is required")
	}
	if c.FindCharacterByID(member.ID) != nil {
		return mterr.AlreadyExistsf("character %q is already in the party", member.Name)
	}
	c.Party = append(c.Party, member)
	return nil
}

// RemoveCharacter drops a hero from the party by id.
func (c *Campaign) RemoveCharacter(id string) error {
	for i, member := range c.Party {
		if member.ID == id {
			c.Party = append(c.Party[:i], c.Party[i+1:]...)
			return nil
		}
	}
	return mterr.NotFoundf("character %q not found in party", id)
}

// CloneParty returns a deep copy of the party. Mutation batches are
// applied against the copy and committed in one swap.
func (c *Campaign) CloneParty() []*character.Character {
	party := make([]*character.Character, len(c.Party))
	for i, member := range c.Party {
		party[i] = member.Clone()
	}
	return party
}

// ReplaceParty swaps in a new party slice, typically a mutated
// snapshot from CloneParty.
func (c *Campaign) ReplaceParty(party []*character.Character) {
	if party == nil {
		party = []*character.Character{}
	}
	c.Party = party
}
