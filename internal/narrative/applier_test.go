package narrative_test

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	"github.com/mythictome/mythic-tome/internal/narrative"
)

type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return "id"
}

func call(t *testing.T, name string, args map[string]any) narrative.RawCall {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	return narrative.RawCall{Name: name, Args: raw}
}

func testParty() []*character.Character {
	hero := &character.Character{
		ID:    "h1",
		Name:  "Elarion",
		Class: "Kouzelník",
		Level: 1,
		HP:    character.HitPoints{Current: 8, Max: 8},
		Stats: map[shared.Attribute]int{
			shared.AttributeStrength:     10,
			shared.AttributeDexterity:    14,
			shared.AttributeConstitution: 12,
			shared.AttributeIntelligence: 16,
			shared.AttributeWisdom:       10,
			shared.AttributeCharisma:     10,
		},
		EquippedItems: make(map[shared.Slot]string),
	}
	hero.WithIDGenerator(&seqGenerator{})
	return []*character.Character{hero}
}

func newApplier() *narrative.Applier {
	return narrative.NewApplier(zerolog.Nop())
}

func TestApply_AddToInventory(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpAddToInventory, map[string]any{
			"characterName": "elarion",
			"itemName":      "Lektvar léčení",
			"quantity":      2,
			"properties":    map[string]any{"healing": "2d4+2"},
		}),
	})

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "Lektvar léčení")
	assert.Contains(t, notices[0], "x2")

	item := party[0].FindItemByName("Lektvar léčení")
	require.NotNil(t, item)
	assert.Equal(t, 2, item.Quantity)
}

func TestApply_AddSpellUsesSpellNotice(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpAddToInventory, map[string]any{
			"characterName": "Elarion",
			"itemName":      "Spánek",
			"quantity":      1,
			"itemType":      "spell",
		}),
	})

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "Kúzlo")

	spell := party[0].FindItemByName("Spánek")
	require.NotNil(t, spell)
	assert.Equal(t, character.KindSpell, spell.Kind)
	assert.NotEmpty(t, spell.Description, "compendium autofill")
}

func TestApply_EquipItem(t *testing.T) {
	party := testParty()
	_, err := party[0].AddItem(&character.AddItemInput{Name: "Hůl", EquipSlot: shared.SlotMainHand})
	require.NoError(t, err)

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpEquipItem, map[string]any{
			"characterName": "Elarion",
			"itemName":      "Hůl",
			"slot":          "mainHand",
		}),
	})

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "nasadil")
	assert.NotEmpty(t, party[0].EquippedItems[shared.SlotMainHand])
}

func TestApply_EquipMissingItemLeavesVisibleNotice(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpEquipItem, map[string]any{
			"characterName": "Elarion",
			"itemName":      "Plamenný meč",
			"slot":          "mainHand",
		}),
	})

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "Chyba")
	assert.Contains(t, notices[0], "Plamenný meč")
}

func TestApply_UnknownCharacterNoticeDoesNotAbortBatch(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpAddToInventory, map[string]any{
			"characterName": "Neznámy",
			"itemName":      "Meč",
			"quantity":      1,
		}),
		call(t, narrative.OpLevelUpCharacter, map[string]any{
			"characterName": "Elarion",
			"newLevel":      2,
			"hpIncrease":    5,
		}),
	})

	require.Len(t, notices, 2)
	assert.Contains(t, notices[0], "nebola nájdená")
	assert.Contains(t, notices[1], "úroveň 2")

	assert.Equal(t, 2, party[0].Level)
	assert.Equal(t, 13, party[0].HP.Max)
	assert.Equal(t, 13, party[0].HP.Current, "level-up heals to full")
}

func TestApply_UnknownOperationIsIgnored(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, "summonDragon", map[string]any{"characterName": "Elarion"}),
	})

	assert.Empty(t, notices)
}

func TestApply_MalformedArgsSkippedSilently(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		{Name: narrative.OpAddToInventory, Args: json.RawMessage(`{"itemName":"Meč"}`)},
		{Name: narrative.OpLevelUpCharacter, Args: json.RawMessage(`not json`)},
	})

	assert.Empty(t, notices)
	assert.Empty(t, party[0].Inventory)
}

func TestApply_RemoveFromInventoryCascadeUnequips(t *testing.T) {
	party := testParty()
	staff, err := party[0].AddItem(&character.AddItemInput{Name: "Hůl", EquipSlot: shared.SlotMainHand})
	require.NoError(t, err)
	require.NoError(t, party[0].Equip(staff.ID))

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpRemoveFromInventory, map[string]any{
			"characterName": "Elarion",
			"itemName":      "Hůl",
			"quantity":      1,
		}),
	})

	require.Len(t, notices, 1)
	assert.Empty(t, party[0].Inventory)
	assert.NotContains(t, party[0].EquippedItems, shared.SlotMainHand)
}

func TestApply_RemoveMissingItemProducesNoNotice(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpRemoveFromInventory, map[string]any{
			"characterName": "Elarion",
			"itemName":      "Neexistuje",
			"quantity":      1,
		}),
	})

	assert.Empty(t, notices)
}

func TestApply_UpdateStatsSkipsUnknownAttributes(t *testing.T) {
	party := testParty()

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpUpdateCharacterStats, map[string]any{
			"characterName": "Elarion",
			"statsToUpdate": []map[string]any{
				{"stat": "INT", "newValue": 18},
				{"stat": "LCK", "newValue": 20},
			},
		}),
	})

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "INT: 18")
	assert.NotContains(t, notices[0], "LCK")
	assert.Equal(t, 18, party[0].Stats[shared.AttributeIntelligence])
}

func TestApply_UpdateSpellSlotsReplacesMapping(t *testing.T) {
	party := testParty()
	party[0].SpellSlots = map[string]*character.SpellSlotPool{
		"1": {Current: 0, Max: 2},
	}

	notices := newApplier().Apply(party, []narrative.RawCall{
		call(t, narrative.OpUpdateSpellSlots, map[string]any{
			"characterName": "Elarion",
			"spellSlots": []map[string]any{
				{"level": 1, "current": 4, "max": 4},
				{"level": 2, "current": 2, "max": 2},
			},
		}),
	})

	require.Len(t, notices, 1)
	require.Contains(t, party[0].SpellSlots, "2")
	assert.Equal(t, 4, party[0].SpellSlots["1"].Max)
}
