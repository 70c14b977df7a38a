package character

import (
	"fmt"

	"github.com/mythictome/mythic-tome/internal/domain/rulebook"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
)

// UnlimitedPreparedThreshold marks the "no preparation limit" sentinel:
// any cap at or above this value means the class does not enforce
// spell preparation.
const UnlimitedPreparedThreshold = 90

// noPreparedLimit is the sentinel returned for classes without a
// preparation cap.
const noPreparedLimit = 99

// Modifier computes the ability modifier for a score: floor((score-10)/2).
// Negative halves round toward negative infinity, so a score of 7
// yields -2.
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go integer division truncates toward zero; odd negative
		// differences need one more step down.
		return (diff - 1) / 2
	}
	return diff / 2
}

// FormatModifier renders a modifier with an explicit sign ("+2", "-1").
func FormatModifier(modifier int) string {
	if modifier >= 0 {
		return fmt.Sprintf("+%d", modifier)
	}
	return fmt.Sprintf("%d", modifier)
}

// ProficiencyBonus computes the proficiency bonus for a level:
// ceil(level/4) + 1.
func ProficiencyBonus(level int) int {
	return (level+3)/4 + 1
}

// Modifier returns the character's modifier for one attribute.
func (c *Character) Modifier(attr shared.Attribute) int {
	return Modifier(c.Stats[attr])
}

// ProficiencyBonus returns the character's proficiency bonus.
func (c *Character) ProficiencyBonus() int {
	return ProficiencyBonus(c.Level)
}

// armorCategory resolves an equipped body armor's category, preferring
// the explicit tag and falling back to the name heuristic.
func armorCategory(item *InventoryItem) rulebook.ArmorCategory {
	if item.ArmorCategory != rulebook.ArmorCategoryUnknown {
		return item.ArmorCategory
	}
	return rulebook.ClassifyArmorName(item.Name)
}

// TotalArmorClass derives the character's armor class from equipped
// items. With body armor equipped the base is the armor's AC property
// plus a category-dependent DEX contribution; unarmored base is
// 10 + DEX modifier. Every other occupied slot stacks its AC property
// unconditionally, with no cap. This is this system's own simplified
// armor rule; it is not meant to be tabletop-accurate.
func (c *Character) TotalArmorClass() int {
	dexMod := c.Modifier(shared.AttributeDexterity)

	base := 0
	if armor := c.equippedItem(shared.SlotArmor); armor != nil {
		if armor.Properties != nil {
			base = armor.Properties.AC
		}
		switch armorCategory(armor) {
		case rulebook.ArmorCategoryLight:
			base += dexMod
		case rulebook.ArmorCategoryMedium:
			if dexMod > 2 {
				base += 2
			} else {
				base += dexMod
			}
		}
		// Heavy: no DEX contribution.
	} else {
		base = 10 + dexMod
	}

	bonus := 0
	for slot := range c.EquippedItems {
		if slot == shared.SlotArmor {
			continue
		}
		item := c.equippedItem(slot)
		if item != nil && item.Properties != nil {
			bonus += item.Properties.AC
		}
	}

	return base + bonus
}

// equippedItem resolves a slot to its inventory entry. A slot whose
// reference no longer exists in inventory reads as empty.
func (c *Character) equippedItem(slot shared.Slot) *InventoryItem {
	id, ok := c.EquippedItems[slot]
	if !ok {
		return nil
	}
	return c.FindItem(id)
}

// MaxPreparedSpells derives the preparation cap for the character's
// class. Wizards prepare level + INT modifier, clerics level + WIS
// modifier, paladins floor(level/2) + CHA modifier, each at least 1.
// All other classes return a sentinel >= UnlimitedPreparedThreshold
// meaning no cap is enforced.
func (c *Character) MaxPreparedSpells() int {
	switch c.Class {
	case rulebook.ClassWizard:
		return maxInt(1, c.Level+c.Modifier(shared.AttributeIntelligence))
	case rulebook.ClassCleric:
		return maxInt(1, c.Level+c.Modifier(shared.AttributeWisdom))
	case rulebook.ClassPaladin:
		return maxInt(1, c.Level/2+c.Modifier(shared.AttributeCharisma))
	}
	return noPreparedLimit
}

// PreparedSpellCount counts the spells currently flagged prepared.
func (c *Character) PreparedSpellCount() int {
	count := 0
	for _, item := range c.Inventory {
		if item.Kind == KindSpell && item.Prepared {
			count++
		}
	}
	return count
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
