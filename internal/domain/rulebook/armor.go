package rulebook

import "strings"

// ArmorCategory classifies body armor for the dexterity contribution to
// armor class: light armor adds the full DEX modifier, medium armor
// caps it at +2, heavy armor adds nothing.
type ArmorCategory string

const (
	ArmorCategoryUnknown ArmorCategory = ""
	ArmorCategoryLight   ArmorCategory = "light"
	ArmorCategoryMedium  ArmorCategory = "medium"
	ArmorCategoryHeavy   ArmorCategory = "heavy"
)

var (
	lightArmorKeywords  = []string{"kožená", "leather", "róba"}
	mediumArmorKeywords = []string{"krúžková", "chain", "šupinová"}
)

// ClassifyArmorName infers an armor category from a display name. This
// is the back-compat fallback for items that carry no explicit
// category tag: the caller should prefer the tag when present. Names
// matching no keyword classify as heavy (no DEX contribution), which is
// this system's own simplified rule, not a tabletop-accurate model.
func ClassifyArmorName(name string) ArmorCategory {
	lower := strings.ToLower(name)
	for _, kw := range lightArmorKeywords {
		if strings.Contains(lower, kw) {
			return ArmorCategoryLight
		}
	}
	for _, kw := range mediumArmorKeywords {
		if strings.Contains(lower, kw) {
			return ArmorCategoryMedium
		}
	}
	return ArmorCategoryHeavy
}
