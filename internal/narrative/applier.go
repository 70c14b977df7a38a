package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// Applier runs tool-call batches against a party snapshot. Each call
// is isolated: a call that fails or names an unknown character leaves
// the rest of the batch untouched. The caller provides a deep-copied
// party and decides when to commit it.
type Applier struct {
	log zerolog.Logger
}

// NewApplier creates an applier logging through the given logger.
func NewApplier(log zerolog.Logger) *Applier {
	return &Applier{log: log}
}

// Apply mutates the party snapshot in place and returns the system
// notices to append to the transcript, in call order. Calls naming a
// character not in the party produce a visible notice; calls with
// malformed arguments or an unknown operation are skipped with a log
// line only.
func (a *Applier) Apply(party []*character.Character, calls []RawCall) []string {
	var notices []string

	for _, call := range calls {
		var named characterNameOnly
		if err := json.Unmarshal(call.Args, &named); err != nil || named.CharacterName == "" {
			a.log.Warn().Str("op", call.Name).Msg("tool call without character name, skipping")
			continue
		}

		target := findCharacter(party, named.CharacterName)
		if target == nil {
			notices = append(notices,
				fmt.Sprintf("*Systémová chyba: Postava s menom %q nebola nájdená.*", named.CharacterName))
			continue
		}

		notice, err := a.applyCall(target, call)
		if err != nil {
			a.log.Warn().Err(err).Str("op", call.Name).Str("character", target.Name).
				Msg("tool call failed, skipping")
			continue
		}
		if notice != "" {
			notices = append(notices, notice)
		}
	}

	return notices
}

func (a *Applier) applyCall(target *character.Character, call RawCall) (string, error) {
	switch call.Name {
	case OpAddToInventory:
		return a.addToInventory(target, call.Args)
	case OpEquipItem:
		return a.equipItem(target, call.Args)
	case OpRemoveFromInventory:
		return a.removeFromInventory(target, call.Args)
	case OpLevelUpCharacter:
		return a.levelUp(target, call.Args)
	case OpAddCharacterAbility:
		return a.addAbility(target, call.Args)
	case OpUpdateCharacterStats:
		return a.updateStats(target, call.Args)
	case OpUpdateSpellSlots:
		return a.updateSpellSlots(target, call.Args)
	default:
		a.log.Warn().Str("op", call.Name).Msg("unknown tool call, ignoring")
		return "", nil
	}
}

func (a *Applier) addToInventory(target *character.Character, raw json.RawMessage) (string, error) {
	var args AddToInventoryArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if args.ItemName == "" || args.Quantity < 1 {
		return "", fmt.Errorf("addToInventory needs itemName and quantity")
	}

	kind := character.KindItem
	if strings.EqualFold(args.ItemType, string(character.KindSpell)) {
		kind = character.KindSpell
	}

	_, err := target.AddItem(&character.AddItemInput{
		Name:        args.ItemName,
		Quantity:    args.Quantity,
		Kind:        kind,
		Description: args.Description,
		Properties:  args.Properties.toShared(),
		EquipSlot:   shared.Slot(args.EquipSlot),
	})
	if err != nil {
		return "", err
	}

	if kind == character.KindSpell {
		return fmt.Sprintf("*%s (Kúzlo) bolo zapísané do knihy kúziel postavy %s.*",
			args.ItemName, target.Name), nil
	}
	return fmt.Sprintf("*%s (x%d) bol pridaný do inventára postavy %s.*",
		args.ItemName, args.Quantity, target.Name), nil
}

func (a *Applier) equipItem(target *character.Character, raw json.RawMessage) (string, error) {
	var args EquipItemArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if args.ItemName == "" || args.Slot == "" {
		return "", fmt.Errorf("equipItem needs itemName and slot")
	}

	item := target.FindItemByName(args.ItemName)
	if item == nil {
		return fmt.Sprintf("*Chyba: %s nemá v inventári %s.*", target.Name, args.ItemName), nil
	}

	slot := shared.ParseSlot(args.Slot)
	if slot == "" {
		return "", fmt.Errorf("unknown equip slot %q", args.Slot)
	}
	if err := target.EquipToSlot(item.ID, slot); err != nil {
		return "", err
	}

	return fmt.Sprintf("*%s si nasadil %s do slotu %s.*", target.Name, args.ItemName, args.Slot), nil
}

func (a *Applier) removeFromInventory(target *character.Character, raw json.RawMessage) (string, error) {
	var args RemoveFromInventoryArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if args.ItemName == "" || args.Quantity < 1 {
		return "", fmt.Errorf("removeFromInventory needs itemName and quantity")
	}

	if _, err := target.RemoveQuantity(args.ItemName, args.Quantity); err != nil {
		// A remove for something the character does not carry is not
		// worth a transcript notice.
		return "", err
	}

	return fmt.Sprintf("*%s (x%d) bol odobraný z inventára postavy %s.*",
		args.ItemName, args.Quantity, target.Name), nil
}

func (a *Applier) levelUp(target *character.Character, raw json.RawMessage) (string, error) {
	var args LevelUpArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if args.NewLevel == 0 {
		return "", fmt.Errorf("levelUpCharacter needs newLevel")
	}

	if err := target.LevelUp(args.NewLevel, args.HPIncrease); err != nil {
		return "", err
	}

	return fmt.Sprintf("*%s postúpil na úroveň %d!*", target.Name, args.NewLevel), nil
}

func (a *Applier) addAbility(target *character.Character, raw json.RawMessage) (string, error) {
	var args AddAbilityArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if args.AbilityName == "" || args.AbilityDescription == "" {
		return "", fmt.Errorf("addCharacterAbility needs abilityName and abilityDescription")
	}

	target.AddAbility(args.AbilityName, args.AbilityDescription)
	return fmt.Sprintf("*%s získal novú schopnosť: %s.*", target.Name, args.AbilityName), nil
}

func (a *Applier) updateStats(target *character.Character, raw json.RawMessage) (string, error) {
	var args UpdateStatsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}

	var changes []string
	for _, update := range args.StatsToUpdate {
		attr := shared.ParseAttribute(update.Stat)
		if attr == shared.AttributeNone {
			a.log.Warn().Str("stat", update.Stat).Str("character", target.Name).
				Msg("unknown attribute in stat update, skipping")
			continue
		}
		if err := target.SetAttribute(attr, update.NewValue); err != nil {
			return "", err
		}
		changes = append(changes, fmt.Sprintf("%s: %d", attr, update.NewValue))
	}
	if len(changes) == 0 {
		return "", nil
	}

	return fmt.Sprintf("*Vlastnosti postavy %s boli upravené: %s.*",
		target.Name, strings.Join(changes, ", ")), nil
}

func (a *Applier) updateSpellSlots(target *character.Character, raw json.RawMessage) (string, error) {
	var args UpdateSpellSlotsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", err
	}
	if len(args.SpellSlots) == 0 {
		return "", fmt.Errorf("updateSpellSlots needs at least one slot level")
	}

	pools := make(map[int]character.SpellSlotPool, len(args.SpellSlots))
	for _, slot := range args.SpellSlots {
		pools[slot.Level] = character.SpellSlotPool{Current: slot.Current, Max: slot.Max}
	}
	if err := target.SetSpellSlots(pools); err != nil {
		return "", err
	}

	return fmt.Sprintf("*Pozície kúziel pre postavu %s boli aktualizované.*", target.Name), nil
}

func findCharacter(party []*character.Character, name string) *character.Character {
	for _, member := range party {
		if strings.EqualFold(member.Name, name) {
			return member
		}
	}
	return nil
}
