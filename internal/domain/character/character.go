package character

import (
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/rulebook"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/uuid"
)

// ItemKind distinguishes carried items from spellbook entries.
type ItemKind string

const (
	KindItem  ItemKind = "item"
	KindSpell ItemKind = "spell"
)

// InventoryItem is one entry in a character's inventory. Spells share
// the inventory with items; Prepared and EquipSlot are meaningful only
// for their respective kinds (a spell is never equippable).
type InventoryItem struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Quantity    int                    `json:"quantity"`
	Kind        ItemKind               `json:"type"`
	Properties  *shared.ItemProperties `json:"properties,omitempty"`
	Description string                 `json:"description,omitempty"`
	Prepared    bool                   `json:"prepared,omitempty"`
	EquipSlot   shared.Slot            `json:"equipSlot,omitempty"`

	// ArmorCategory is the explicit light/medium/heavy tag. Items
	// created before the tag existed have it empty; derivation falls
	// back to the name-keyword heuristic in rulebook.
	ArmorCategory rulebook.ArmorCategory `json:"armorCategory,omitempty"`
}

// Clone returns a deep copy of the item.
func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	clone := *i
	if i.Properties != nil {
		props := *i.Properties
		clone.Properties = &props
	}
	return &clone
}

// AbilityChoice is one decision offered by an ability, e.g. a fighting
// style pick.
type AbilityChoice struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// Ability is a class feature, racial trait, or granted power.
type Ability struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Choices     []AbilityChoice `json:"choices,omitempty"`
}

// HitPoints holds current and max HP. Current is clamped to [0, Max]
// on every mutation.
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// SpellSlotPool is the {current, max} pair for one spell-slot level.
type SpellSlotPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Character is the mutable aggregate holding a hero's stats,
// inventory, equipment and spell state. Derived values (modifiers,
// total AC, prepared-spell cap) are never stored; see derive.go.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"className"`
	Background string `json:"background"`
	Level      int    `json:"level"`

	HP     HitPoints                `json:"hp"`
	BaseAC int                      `json:"ac"`
	Stats  map[shared.Attribute]int `json:"stats"`

	Inventory []*InventoryItem `json:"inventory"`
	Abilities []*Ability       `json:"abilities"`
	Notes     string           `json:"notes"`

	// AbilitySelections records at most one chosen option per
	// (ability id, choice id) pair.
	AbilitySelections map[string]map[string]string `json:"abilitySelections"`

	// SpellSlots maps stringified slot level ("1".."9") to its pool.
	// Nil for non-casters.
	SpellSlots map[string]*SpellSlotPool `json:"spellSlots,omitempty"`

	// EquippedItems maps a slot to the id of the inventory entry
	// occupying it. Values must reference inventory ids; derivation
	// treats a dangling reference as an empty slot.
	EquippedItems map[shared.Slot]string `json:"equippedItems"`

	idGen uuid.Generator
}

// WithIDGenerator sets a custom id generator (for testing)
func (c *Character) WithIDGenerator(gen uuid.Generator) *Character {
	c.idGen = gen
	return c
}

func (c *Character) getIDGenerator() uuid.Generator {
	if c.idGen == nil {
		c.idGen = uuid.NewGoogleUUIDGenerator()
	}
	return c.idGen
}

// Clone returns a deep copy of the character. The mutation protocol
// applies batches against a cloned party snapshot so a failed batch
// never leaks partial state.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c

	clone.Stats = make(map[shared.Attribute]int, len(c.Stats))
	for attr, score := range c.Stats {
		clone.Stats[attr] = score
	}

	clone.Inventory = make([]*InventoryItem, len(c.Inventory))
	for i, item := range c.Inventory {
		clone.Inventory[i] = item.Clone()
	}

	clone.Abilities = make([]*Ability, len(c.Abilities))
	for i, ability := range c.Abilities {
		a := *ability
		a.Choices = append([]AbilityChoice(nil), ability.Choices...)
		clone.Abilities[i] = &a
	}

	if c.AbilitySelections != nil {
		clone.AbilitySelections = make(map[string]map[string]string, len(c.AbilitySelections))
		for abilityID, selections := range c.AbilitySelections {
			inner := make(map[string]string, len(selections))
			for choiceID, option := range selections {
				inner[choiceID] = option
			}
			clone.AbilitySelections[abilityID] = inner
		}
	}

	if c.SpellSlots != nil {
		clone.SpellSlots = make(map[string]*SpellSlotPool, len(c.SpellSlots))
		for level, pool := range c.SpellSlots {
			p := *pool
			clone.SpellSlots[level] = &p
		}
	}

	if c.EquippedItems != nil {
		clone.EquippedItems = make(map[shared.Slot]string, len(c.EquippedItems))
		for slot, id := range c.EquippedItems {
			clone.EquippedItems[slot] = id
		}
	}

	return &clone
}

// FindItem returns the inventory entry with the given id, nil if absent.
func (c *Character) FindItem(id string) *InventoryItem {
	for _, item := range c.Inventory {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// FindItemByName returns the first inventory entry whose name matches
// case-insensitively, nil if absent.
func (c *Character) FindItemByName(name string) *InventoryItem {
	for _, item := range c.Inventory {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// SetAttribute overwrites one attribute score.
func (c *Character) SetAttribute(attr shared.Attribute, score int) error {
	if shared.ParseAttribute(string(attr)) == shared.AttributeNone {
		return mterr.InvalidArgumentf("unknown attribute %q", attr)
	}
	if c.Stats == nil {
		c.Stats = make(map[shared.Attribute]int)
	}
	c.Stats[attr] = score
	return nil
}

// SetCurrentHP sets current hit points, clamped to [0, max].
func (c *Character) SetCurrentHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.HP.Max {
		hp = c.HP.Max
	}
	c.HP.Current = hp
}

// LevelUp sets the character's level and raises max HP by hpIncrease,
// pinning current HP to the new max (full heal on level-up).
func (c *Character) LevelUp(newLevel, hpIncrease int) error {
	if newLevel < 1 {
		return mterr.InvalidArgumentf("invalid level %d", newLevel)
	}
	c.Level = newLevel
	c.HP.Max += hpIncrease
	c.HP.Current = c.HP.Max
	return nil
}

// AddAbility appends a new ability with a freshly generated id and
// returns it.
func (c *Character) AddAbility(name, description string) *Ability {
	ability := &Ability{
		ID:          c.getIDGenerator().New(),
		Name:        name,
		Description: description,
	}
	c.Abilities = append(c.Abilities, ability)
	return ability
}

func (c *Character) findAbility(abilityID string) *Ability {
	for _, ability := range c.Abilities {
		if ability.ID == abilityID {
			return ability
		}
	}
	return nil
}

// AbilityChoiceOptions returns the options still offerable for one
// choice on an ability: the declared options minus any option already
// chosen for a sibling choice of the same ability instance.
func (c *Character) AbilityChoiceOptions(abilityID, choiceID string) ([]string, error) {
	ability := c.findAbility(abilityID)
	if ability == nil {
		return nil, mterr.NotFoundf("ability %q not found", abilityID)
	}

	var choice *AbilityChoice
	for i := range ability.Choices {
		if ability.Choices[i].ID == choiceID {
			choice = &ability.Choices[i]
			break
		}
	}
	if choice == nil {
		return nil, mterr.NotFoundf("choice %q not found on ability %q", choiceID, abilityID)
	}

	taken := make(map[string]bool)
	for otherID, option := range c.AbilitySelections[abilityID] {
		if otherID != choiceID {
			taken[option] = true
		}
	}

	options := make([]string, 0, len(choice.Options))
	for _, option := range choice.Options {
		if !taken[option] {
			options = append(options, option)
		}
	}
	return options, nil
}

// SelectAbilityChoice records the chosen option for one choice on an
// ability. The option must still be offerable (see
// AbilityChoiceOptions).
func (c *Character) SelectAbilityChoice(abilityID, choiceID, option string) error {
	options, err := c.AbilityChoiceOptions(abilityID, choiceID)
	if err != nil {
		return err
	}

	offered := false
	for _, o := range options {
		if o == option {
			offered = true
			break
		}
	}
	if !offered {
		return mterr.Validationf("option %q is not available for this choice", option)
	}

	if c.AbilitySelections == nil {
		c.AbilitySelections = make(map[string]map[string]string)
	}
	if c.AbilitySelections[abilityID] == nil {
		c.AbilitySelections[abilityID] = make(map[string]string)
	}
	c.AbilitySelections[abilityID][choiceID] = option
	return nil
}
