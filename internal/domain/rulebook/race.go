package rulebook

import (
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// Race is a playable race definition from the rule tables.
type Race struct {
	Name        string                   `json:"name"`
	ASI         map[shared.Attribute]int `json:"asi"`
	Traits      []string                 `json:"traits"`
	Description string                   `json:"description"`
}

// Races lists the playable races. Character classification fields are
// free-form strings resolved against this table, not enforced keys.
var Races = map[string]*Race{
	"Člověk": {
		Name: "Člověk",
		ASI: map[shared.Attribute]int{
			shared.AttributeStrength: 1, shared.AttributeDexterity: 1, shared.AttributeConstitution: 1,
			shared.AttributeIntelligence: 1, shared.AttributeWisdom: 1, shared.AttributeCharisma: 1,
		},
		Traits:      []string{"Všestrannost"},
		Description: "Lidé jsou ambiciózní a nejvíce přizpůsobiví ze všech ras.",
	},
	"Elf": {
		Name:        "Elf",
		ASI:         map[shared.Attribute]int{shared.AttributeDexterity: 2},
		Traits:      []string{"Vidění ve tmě", "Fey původ", "Trans"},
		Description: "Kouzelný lid nadpozemské milosti, žijící v lesích a městech.",
	},
	"Trpaslík": {
		Name:        "Trpaslík",
		ASI:         map[shared.Attribute]int{shared.AttributeConstitution: 2},
		Traits:      []string{"Vidění ve tmě", "Trpasličí odolnost"},
		Description: "Mistři kovu a kamene, hrdí válečníci z hor.",
	},
	"Hobit": {
		Name:        "Hobit",
		ASI:         map[shared.Attribute]int{shared.AttributeDexterity: 2},
		Traits:      []string{"Štěstí", "Odvážnost"},
		Description: "Malí lidé s velkým srdcem, milující klid domova.",
	},
	"Drakorozený": {
		Name:        "Drakorozený",
		ASI:         map[shared.Attribute]int{shared.AttributeStrength: 2, shared.AttributeCharisma: 1},
		Traits:      []string{"Dračí původ", "Odolnost vůči poškození"},
		Description: "Humanoidní draci s hrdou tradicí.",
	},
	"Gnome": {
		Name:        "Gnome",
		ASI:         map[shared.Attribute]int{shared.AttributeIntelligence: 2},
		Traits:      []string{"Vidění ve tmě", "Gnomí chytrost"},
		Description: "Vynalézaví a energičtí učenci a řemeslníci.",
	},
}

// GetRace resolves a race by name, case-insensitively. Returns nil when
// the name is not in the table.
func GetRace(name string) *Race {
	if race, ok := Races[name]; ok {
		return race
	}
	for key, race := range Races {
		if strings.EqualFold(key, name) {
			return race
		}
	}
	return nil
}
