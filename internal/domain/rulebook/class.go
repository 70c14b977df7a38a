package rulebook

import (
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// Class names the preparation-capped casters are gated on. Any class
// outside this set has no preparation limit.
const (
	ClassWizard  = "Kouzelník"
	ClassCleric  = "Klerik"
	ClassPaladin = "Paladin"
)

// Proficiencies groups a class's armor and weapon training.
type Proficiencies struct {
	Armor   []string `json:"armor"`
	Weapons []string `json:"weapons"`
}

// Class is a playable class definition from the rule tables.
type Class struct {
	Name           string             `json:"name"`
	HitDie         int                `json:"hitDie"`
	PrimaryAbility []shared.Attribute `json:"primaryAbility"`
	SavingThrows   []shared.Attribute `json:"savingThrows"`
	Proficiencies  Proficiencies      `json:"proficiencies"`
	Features       []string           `json:"features"`
	Description    string             `json:"description"`
}

var Classes = map[string]*Class{
	"Bojovník": {
		Name:           "Bojovník",
		HitDie:         10,
		PrimaryAbility: []shared.Attribute{shared.AttributeStrength},
		SavingThrows:   []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		Proficiencies: Proficiencies{
			Armor:   []string{"Všechny zbroje", "Štíty"},
			Weapons: []string{"Všechny zbraně"},
		},
		Features:    []string{"Druhý dech", "Bojový styl"},
		Description: "Mistr boje se zbraněmi a zbrojí.",
	},
	ClassWizard: {
		Name:           ClassWizard,
		HitDie:         6,
		PrimaryAbility: []shared.Attribute{shared.AttributeIntelligence},
		SavingThrows:   []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		Proficiencies: Proficiencies{
			Armor:   []string{"Žádná"},
			Weapons: []string{"Dýky", "Hole", "Kuše"},
		},
		Features:    []string{"Sesílání kouzel", "Mystická obnova"},
		Description: "Učenec ovládající magii skrze studium.",
	},
	"Tulák": {
		Name:           "Tulák",
		HitDie:         8,
		PrimaryAbility: []shared.Attribute{shared.AttributeDexterity},
		SavingThrows:   []shared.Attribute{shared.AttributeDexterity, shared.AttributeIntelligence},
		Proficiencies: Proficiencies{
			Armor:   []string{"Lehké zbroje"},
			Weapons: []string{"Rapíry", "Krátké meče", "Luky"},
		},
		Features:    []string{"Nenápadný útok", "Zlodějský slang"},
		Description: "Mistr lsti, nenápadnosti a přesných zásahů.",
	},
	ClassCleric: {
		Name:           ClassCleric,
		HitDie:         8,
		PrimaryAbility: []shared.Attribute{shared.AttributeWisdom},
		SavingThrows:   []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		Proficiencies: Proficiencies{
			Armor:   []string{"Lehké a střední zbroje", "Štíty"},
			Weapons: []string{"Jednoduché zbraně"},
		},
		Features:    []string{"Sesílání kouzel", "Božská doména"},
		Description: "Válečník víry ovládající božskou magii.",
	},
	ClassPaladin: {
		Name:           ClassPaladin,
		HitDie:         10,
		PrimaryAbility: []shared.Attribute{shared.AttributeStrength, shared.AttributeCharisma},
		SavingThrows:   []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		Proficiencies: Proficiencies{
			Armor:   []string{"Všechny zbroje", "Štíty"},
			Weapons: []string{"Všechny zbraně"},
		},
		Features:    []string{"Božský úder", "Vkládání rukou"},
		Description: "Svatý bojovník vázaný přísahou.",
	},
	"Bard": {
		Name:           "Bard",
		HitDie:         8,
		PrimaryAbility: []shared.Attribute{shared.AttributeCharisma},
		SavingThrows:   []shared.Attribute{shared.AttributeDexterity, shared.AttributeCharisma},
		Proficiencies: Proficiencies{
			Armor:   []string{"Lehké zbroje"},
			Weapons: []string{"Jednoduché zbraně", "Kordy"},
		},
		Features:    []string{"Sesílání kouzel", "Bardův dar"},
		Description: "Umělec, jehož hudba je protkána magií.",
	},
}

// GetClass resolves a class by name, case-insensitively. Returns nil
// when the name is not in the table.
func GetClass(name string) *Class {
	if class, ok := Classes[name]; ok {
		return class
	}
	for key, class := range Classes {
		if strings.EqualFold(key, name) {
			return class
		}
	}
	return nil
}
