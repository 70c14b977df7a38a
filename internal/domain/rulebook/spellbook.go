package rulebook

import (
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// Spell is a compendium entry. When a spell of a matching name is added
// to an inventory, its description and properties are auto-populated
// from here unless the caller supplied their own.
type Spell struct {
	Name        string                `json:"name"`
	Level       int                   `json:"level"`
	Description string                `json:"description"`
	Properties  shared.ItemProperties `json:"properties"`
}

var Spellbook = map[string]*Spell{
	"Ohnivá střela": {
		Name:        "Ohnivá střela",
		Level:       0,
		Description: "Vystřelíš paprsek ohně na cíl.",
		Properties:  shared.ItemProperties{Damage: "1d10", DamageType: "ohnivé"},
	},
	"Mágova ruka": {
		Name:        "Mágova ruka",
		Level:       0,
		Description: "Vytvoříš neviditelnou ruku k manipulaci s předměty.",
	},
	"Mihotání": {
		Name:        "Mihotání",
		Level:       0,
		Description: "Drobné magické triky pro pobavení nebo užitek.",
	},
	"Mágova zbroj": {
		Name:        "Mágova zbroj",
		Level:       1,
		Description: "Tvé OČ se zvýší na 13 + Obratnost na 8 hodin.",
		Properties:  shared.ItemProperties{AC: 3},
	},
	"Magická střela": {
		Name:        "Magická střela",
		Level:       1,
		Description: "Tři magické šipky, které vždy zasáhnou cíl.",
		Properties:  shared.ItemProperties{Damage: "3d4+3", DamageType: "silové"},
	},
	"Spánek": {
		Name:        "Spánek",
		Level:       1,
		Description: "Uspíš skupinu slabších nepřátel.",
		Properties:  shared.ItemProperties{Damage: "5d8"},
	},
	"Léčivé slovo": {
		Name:        "Léčivé slovo",
		Level:       1,
		Description: "Rychle vyléčíš spojence v dohledu.",
		Properties:  shared.ItemProperties{Healing: "1d4"},
	},
}

// GetSpell resolves a compendium spell by name, case-insensitively.
func GetSpell(name string) *Spell {
	if spell, ok := Spellbook[name]; ok {
		return spell
	}
	for key, spell := range Spellbook {
		if strings.EqualFold(key, name) {
			return spell
		}
	}
	return nil
}
