package narrative

import (
	"fmt"
	"strings"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// FormatPartySheet renders the party state block embedded in the
// system prompt: one section per character with level, class, base
// attributes, derived armor class and ability names.
func FormatPartySheet(party []*character.Character) string {
	var b strings.Builder
	for _, member := range party {
		abilityNames := make([]string, len(member.Abilities))
		for i, ability := range member.Abilities {
			abilityNames[i] = ability.Name
		}

		fmt.Fprintf(&b, "\n--- POSTAVA: %s ---\n", member.Name)
		fmt.Fprintf(&b, "Level: %d, Povolanie: %s.\n", member.Level, member.Class)
		fmt.Fprintf(&b, "Staty: STR:%d, DEX:%d, CON:%d, INT:%d, WIS:%d, CHA:%d\n",
			member.Stats[shared.AttributeStrength],
			member.Stats[shared.AttributeDexterity],
			member.Stats[shared.AttributeConstitution],
			member.Stats[shared.AttributeIntelligence],
			member.Stats[shared.AttributeWisdom],
			member.Stats[shared.AttributeCharisma])
		fmt.Fprintf(&b, "HP: %d/%d, AC: %d\n", member.HP.Current, member.HP.Max, member.TotalArmorClass())
		if len(abilityNames) > 0 {
			fmt.Fprintf(&b, "Schopnosti: %s\n", strings.Join(abilityNames, ", "))
		}
	}
	return b.String()
}

var difficultyGuidance = map[shared.Difficulty]string{
	shared.DifficultyStory:    "Obtiažnosť: PRÍBEHOVÁ. Súboje sú zhovievavé, sústreď sa na príbeh a atmosféru.",
	shared.DifficultyModerate: "Obtiažnosť: VYVÁŽENÁ. Súboje sú férové, chyby hráčov majú následky.",
	shared.DifficultyHero:     "Obtiažnosť: HRDINSKÁ. Súboje sú tvrdé a smrteľné, zdroje sú vzácne.",
}

// SystemPrompt builds the game-master system instruction for one
// campaign: the level-up rule tables, the mutation protocol steps, the
// current party sheet and the campaign's custom rules.
func SystemPrompt(c *campaign.Campaign) string {
	var b strings.Builder

	b.WriteString(`Jsi Dungeon Master (DM) pro D&D 5e. Tvým úkolem je vést příběh a striktně hlídat level-up postav.

TABULKA ASI (ZVYŠOVÁNÍ VLASTNOSTÍ):
Každá postava získává ASI na úrovních: 4, 8, 12, 16, 19.
- BOJOVNÍK (Fighter): získává ASI navíc na 6. a 14. úrovni.
- TULÁK (Rogue): získává ASI navíc na 10. úrovni.

TABULKA POZIC KOUZEL (Kouzelník/Klerik):
- Lvl 1: 2x 1. kruh
- Lvl 2: 3x 1. kruh
- Lvl 3: 4x 1. kruh, 2x 2. kruh
- Lvl 4: 4x 1. kruh, 3x 2. kruh
- Lvl 5: 4x 1. kruh, 3x 2. kruh, 2x 3. kruh

LEVEL-UP PROTOKOL:
Když postava získá novou úroveň, MUSÍŠ postupovat takto:
1. Zavolej 'levelUpCharacter' (zvýšení Levelu a Max HP).
2. Zkontroluj tabulku ASI. Pokud získala ASI, proveď ASI protokol.
3. Pro magická povolání ZKONTROLUJ TABULKU POZIC KOUZEL a zavolej 'updateSpellSlots' s novými maximálními hodnotami. Aktuální sloty nastav na nové maximum.
4. Přidej nové schopnosti třídy přes 'addCharacterAbility'.
5. Až hráč odpoví na ASI, zavolej 'updateCharacterStats'.

Při DLOUHÉM ODPOČINKU použij 'updateSpellSlots' k obnovení všech aktuálních pozic na maximum.
`)

	if guidance, ok := difficultyGuidance[c.Difficulty]; ok {
		b.WriteString("\n")
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	if rules := strings.TrimSpace(c.CustomRules); rules != "" {
		b.WriteString("\nVLASTNÍ PRAVIDLA KAMPANĚ:\n")
		b.WriteString(rules)
		b.WriteString("\n")
	}

	b.WriteString("\nAKTUÁLNY STAV DRUŽINY:\n")
	b.WriteString(FormatPartySheet(c.Party))
	b.WriteString("\nOdpovídej slovensky, atmosféricky a proaktivně spravuj hárky.")

	return b.String()
}
