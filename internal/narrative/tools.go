package narrative

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// GameTools declares the mutation protocol as chat-completion tools.
// The engine is expected to call these instead of narrating sheet
// changes as prose.
func GameTools() []openai.Tool {
	characterName := jsonschema.Definition{Type: jsonschema.String}

	declarations := []openai.FunctionDefinition{
		{
			Name:        OpAddToInventory,
			Description: "Pridá predmet/kúzlo do inventára postavy. Pre nositeľné veci VŽDY definuj 'equipSlot'.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"itemName":      {Type: jsonschema.String},
					"quantity":      {Type: jsonschema.Integer},
					"itemType":      {Type: jsonschema.String, Description: "'item' alebo 'spell'"},
					"description":   {Type: jsonschema.String},
					"properties": {
						Type: jsonschema.Object,
						Properties: map[string]jsonschema.Definition{
							"ac":         {Type: jsonschema.Integer, Description: "Bonus k AC (napr. 1 pre náhrdelník ochrany)"},
							"damage":     {Type: jsonschema.String, Description: "Kocka zranenia (napr. 1d8)"},
							"damageType": {Type: jsonschema.String},
							"healing":    {Type: jsonschema.String, Description: "Kocka liečenia (napr. 2d4+2)"},
						},
					},
					"equipSlot": {Type: jsonschema.String, Description: "head, neck, armor, mainHand, offHand, back, hands, waist, feet, ring1, ring2"},
				},
				Required: []string{"characterName", "itemName", "quantity"},
			},
		},
		{
			Name:        OpEquipItem,
			Description: "Nasadí predmet, ktorý už postava má v inventári, do slotu vybavenia.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"itemName":      {Type: jsonschema.String},
					"slot":          {Type: jsonschema.String, Description: "head, neck, armor, mainHand, offHand, back, hands, waist, feet, ring1, ring2"},
				},
				Required: []string{"characterName", "itemName", "slot"},
			},
		},
		{
			Name:        OpRemoveFromInventory,
			Description: "Odoberie predmet z inventára postavy, napríklad pri použití alebo strate.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"itemName":      {Type: jsonschema.String},
					"quantity":      {Type: jsonschema.Integer},
				},
				Required: []string{"characterName", "itemName", "quantity"},
			},
		},
		{
			Name:        OpLevelUpCharacter,
			Description: "Technické zvýšenie úrovne a Max HP v systéme. Zavolaj ako prvé pri level-upe.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"newLevel":      {Type: jsonschema.Integer},
					"hpIncrease":    {Type: jsonschema.Integer},
				},
				Required: []string{"characterName", "newLevel", "hpIncrease"},
			},
		},
		{
			Name:        OpAddCharacterAbility,
			Description: "Pridá novú schopnosť alebo rys do záložky schopností.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName":      characterName,
					"abilityName":        {Type: jsonschema.String},
					"abilityDescription": {Type: jsonschema.String},
				},
				Required: []string{"characterName", "abilityName", "abilityDescription"},
			},
		},
		{
			Name:        OpUpdateCharacterStats,
			Description: "Upraví základné atribúty (STR, DEX...). Použi po hráčovom výbere ASI bodov.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"statsToUpdate": {
						Type: jsonschema.Array,
						Items: &jsonschema.Definition{
							Type: jsonschema.Object,
							Properties: map[string]jsonschema.Definition{
								"stat":     {Type: jsonschema.String, Description: "STR, DEX, CON, INT, WIS alebo CHA"},
								"newValue": {Type: jsonschema.Integer},
							},
							Required: []string{"stat", "newValue"},
						},
					},
				},
				Required: []string{"characterName", "statsToUpdate"},
			},
		},
		{
			Name:        OpUpdateSpellSlots,
			Description: "Aktualizuje maximálny a aktuálny počet pozícií kúziel pre postavu. Použi pri level-upe alebo dlhom odpočinku.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"characterName": characterName,
					"spellSlots": {
						Type:        jsonschema.Array,
						Description: "Kompletný zoznam všetkých pozícií, ktoré postava má.",
						Items: &jsonschema.Definition{
							Type: jsonschema.Object,
							Properties: map[string]jsonschema.Definition{
								"level":   {Type: jsonschema.Integer, Description: "Úroveň pozície (1-9)"},
								"current": {Type: jsonschema.Integer},
								"max":     {Type: jsonschema.Integer},
							},
							Required: []string{"level", "current", "max"},
						},
					},
				},
				Required: []string{"characterName", "spellSlots"},
			},
		},
	}

	tools := make([]openai.Tool, len(declarations))
	for i := range declarations {
		tools[i] = openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &declarations[i],
		}
	}
	return tools
}
