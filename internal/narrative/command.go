// Package narrative implements the mutation protocol between the
// game-master engine and the party: the tool surface the engine calls,
// the typed commands those calls decode into, and the applier that
// runs a batch against a party snapshot.
package narrative

import (
	"encoding/json"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// Operation names the engine may call.
const (
	OpAddToInventory       = "addToInventory"
	OpEquipItem            = "equipItem"
	OpRemoveFromInventory  = "removeFromInventory"
	OpLevelUpCharacter     = "levelUpCharacter"
	OpAddCharacterAbility  = "addCharacterAbility"
	OpUpdateCharacterStats = "updateCharacterStats"
	OpUpdateSpellSlots     = "updateSpellSlots"
)

// RawCall is one tool call as received from the engine: the operation
// name and its undecoded arguments.
type RawCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// ItemPropertiesArgs mirrors the properties object the engine sends
// with addToInventory.
type ItemPropertiesArgs struct {
	AC         int    `json:"ac,omitempty"`
	Damage     string `json:"damage,omitempty"`
	DamageType string `json:"damageType,omitempty"`
	Healing    string `json:"healing,omitempty"`
}

// AddToInventoryArgs are the arguments of addToInventory.
type AddToInventoryArgs struct {
	CharacterName string              `json:"characterName"`
	ItemName      string              `json:"itemName"`
	Quantity      int                 `json:"quantity"`
	ItemType      string              `json:"itemType,omitempty"`
	Description   string              `json:"description,omitempty"`
	Properties    *ItemPropertiesArgs `json:"properties,omitempty"`
	EquipSlot     string              `json:"equipSlot,omitempty"`
}

// EquipItemArgs are the arguments of equipItem.
type EquipItemArgs struct {
	CharacterName string `json:"characterName"`
	ItemName      string `json:"itemName"`
	Slot          string `json:"slot"`
}

// RemoveFromInventoryArgs are the arguments of removeFromInventory.
type RemoveFromInventoryArgs struct {
	CharacterName string `json:"characterName"`
	ItemName      string `json:"itemName"`
	Quantity      int    `json:"quantity"`
}

// LevelUpArgs are the arguments of levelUpCharacter.
type LevelUpArgs struct {
	CharacterName string `json:"characterName"`
	NewLevel      int    `json:"newLevel"`
	HPIncrease    int    `json:"hpIncrease"`
}

// AddAbilityArgs are the arguments of addCharacterAbility.
type AddAbilityArgs struct {
	CharacterName      string `json:"characterName"`
	AbilityName        string `json:"abilityName"`
	AbilityDescription string `json:"abilityDescription"`
}

// StatUpdate is one attribute change inside updateCharacterStats.
type StatUpdate struct {
	Stat     string `json:"stat"`
	NewValue int    `json:"newValue"`
}

// UpdateStatsArgs are the arguments of updateCharacterStats.
type UpdateStatsArgs struct {
	CharacterName string       `json:"characterName"`
	StatsToUpdate []StatUpdate `json:"statsToUpdate"`
}

// SpellSlotUpdate is one slot level inside updateSpellSlots. The
// engine always sends the complete list, which replaces the
// character's mapping wholesale.
type SpellSlotUpdate struct {
	Level   int `json:"level"`
	Current int `json:"current"`
	Max     int `json:"max"`
}

// UpdateSpellSlotsArgs are the arguments of updateSpellSlots.
type UpdateSpellSlotsArgs struct {
	CharacterName string            `json:"characterName"`
	SpellSlots    []SpellSlotUpdate `json:"spellSlots"`
}

// characterNameOnly extracts just the characterName field, which every
// operation carries.
type characterNameOnly struct {
	CharacterName string `json:"characterName"`
}

func (p *ItemPropertiesArgs) toShared() *shared.ItemProperties {
	if p == nil {
		return nil
	}
	return &shared.ItemProperties{
		AC:         p.AC,
		Damage:     p.Damage,
		DamageType: p.DamageType,
		Healing:    p.Healing,
	}
}
