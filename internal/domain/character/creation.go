package character

import (
	"fmt"
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/rulebook"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/uuid"
)

// StandardArray is the suggested base-stat spread offered during
// creation, highest first.
var StandardArray = []int{15, 14, 13, 12, 10, 8}

// CreateInput carries everything needed to roll a new level-1 hero.
// Stats are base scores before racial adjustments; missing attributes
// default to 10.
type CreateInput struct {
	Name       string
	Race       string
	Class      string
	Background string
	Stats      map[shared.Attribute]int

	IDGenerator uuid.Generator
}

// New builds a level-1 character from the rule tables: racial ability
// score increases are applied on top of the base stats, hit points come
// from the class hit die plus the constitution modifier, the starter
// pack and background equipment fill the inventory, and class features
// plus racial traits become abilities. Casters start with two
// first-level spell slots.
func New(input *CreateInput) (*Character, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, mterr.InvalidArgument("character name is required")
	}

	race := rulebook.GetRace(input.Race)
	if race == nil {
		return nil, mterr.InvalidArgumentf("unknown race %q", input.Race)
	}
	class := rulebook.GetClass(input.Class)
	if class == nil {
		return nil, mterr.InvalidArgumentf("unknown class %q", input.Class)
	}
	background := rulebook.GetBackground(input.Background)
	if background == nil {
		return nil, mterr.InvalidArgumentf("unknown background %q", input.Background)
	}

	gen := input.IDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	stats := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		score, ok := input.Stats[attr]
		if !ok {
			score = 10
		}
		stats[attr] = score + race.ASI[attr]
	}

	maxHP := class.HitDie + Modifier(stats[shared.AttributeConstitution])

	c := &Character{
		ID:         gen.New(),
		Name:       strings.TrimSpace(input.Name),
		Race:       race.Name,
		Class:      class.Name,
		Background: background.Name,
		Level:      1,
		HP:         HitPoints{Current: maxHP, Max: maxHP},
		BaseAC:     10 + Modifier(stats[shared.AttributeDexterity]),
		Stats:      stats,
		Notes: fmt.Sprintf("%s\n\nRys zázemí: %s",
			race.Description, background.FeatureName),
		AbilitySelections: make(map[string]map[string]string),
		EquippedItems:     make(map[shared.Slot]string),
		idGen:             gen,
	}

	for _, feature := range class.Features {
		c.Abilities = append(c.Abilities, &Ability{
			ID:          "feat_" + abilitySlug(feature),
			Name:        feature,
			Description: describeAbility(feature, "Schopnost tvého povolání."),
		})
	}
	for _, trait := range race.Traits {
		c.Abilities = append(c.Abilities, &Ability{
			ID:          "trait_" + abilitySlug(trait),
			Name:        trait,
			Description: describeAbility(trait, "Rys tvé rasy."),
		})
	}

	c.Inventory = starterPack(gen, class.Name, background)

	switch class.Name {
	case rulebook.ClassWizard, rulebook.ClassCleric, "Bard":
		c.SpellSlots = map[string]*SpellSlotPool{
			"1": {Current: 2, Max: 2},
		}
	}

	return c, nil
}

func abilitySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func describeAbility(name, fallback string) string {
	if description, ok := rulebook.AbilityDescriptions[name]; ok {
		return description
	}
	return fallback
}

// starterPack assembles the class's starting gear and spells plus the
// background equipment. Body armor carries its category tag so armor
// class derivation never has to fall back to the name heuristic for
// gear we hand out ourselves.
func starterPack(gen uuid.Generator, className string, background *rulebook.Background) []*InventoryItem {
	var pack []*InventoryItem

	item := func(name string, slot shared.Slot, props *shared.ItemProperties) {
		entry := &InventoryItem{
			ID:         gen.New(),
			Name:       name,
			Quantity:   1,
			Kind:       KindItem,
			EquipSlot:  slot,
			Properties: props,
		}
		if slot == shared.SlotArmor {
			entry.ArmorCategory = rulebook.ClassifyArmorName(name)
		}
		pack = append(pack, entry)
	}
	spell := func(name string, prepared bool) {
		entry := &InventoryItem{
			ID:       gen.New(),
			Name:     name,
			Quantity: 1,
			Kind:     KindSpell,
			Prepared: prepared,
		}
		if s := rulebook.GetSpell(name); s != nil {
			entry.Description = s.Description
			if !s.Properties.Empty() {
				props := s.Properties
				entry.Properties = &props
			}
		}
		pack = append(pack, entry)
	}

	switch className {
	case "Bojovník":
		item("Chain Mail", shared.SlotArmor, &shared.ItemProperties{AC: 16})
		item("Dlouhý meč", shared.SlotMainHand, &shared.ItemProperties{Damage: "1d8", DamageType: "sečné"})
		item("Štít", shared.SlotOffHand, &shared.ItemProperties{AC: 2})
	case rulebook.ClassWizard:
		item("Hůl", shared.SlotMainHand, &shared.ItemProperties{Damage: "1d6", DamageType: "drtivé"})
		spell("Ohnivá střela", true)
		spell("Mágova ruka", true)
		spell("Mihotání", true)
		spell("Magická střela", false)
		spell("Spánek", false)
	case rulebook.ClassCleric:
		item("Palcát", shared.SlotMainHand, &shared.ItemProperties{Damage: "1d6", DamageType: "drtivé"})
		item("Štít", shared.SlotOffHand, &shared.ItemProperties{AC: 2})
		spell("Léčivé slovo", true)
	case "Tulák":
		item("Kožená zbroj", shared.SlotArmor, &shared.ItemProperties{AC: 11})
		item("Rapír", shared.SlotMainHand, &shared.ItemProperties{Damage: "1d8", DamageType: "bodné"})
	default:
		item("Dýka", shared.SlotMainHand, &shared.ItemProperties{Damage: "1d4", DamageType: "bodné"})
	}

	for _, name := range background.Equipment {
		pack = append(pack, &InventoryItem{
			ID:       gen.New(),
			Name:     name,
			Quantity: 1,
			Kind:     KindItem,
		})
	}

	return pack
}
