package shared

// Attribute is one of the six core ability scores. The string values
// match the serialized form used by campaign exports ("STR", "DEX", ...).
type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "STR"
	AttributeDexterity    Attribute = "DEX"
	AttributeConstitution Attribute = "CON"
	AttributeIntelligence Attribute = "INT"
	AttributeWisdom       Attribute = "WIS"
	AttributeCharisma     Attribute = "CHA"
)

// ParseAttribute resolves a string to a known attribute, AttributeNone
// if the string names no attribute. Used by the mutation protocol to
// skip entries naming unrecognized stats.
func ParseAttribute(s string) Attribute {
	for _, attr := range Attributes {
		if string(attr) == s {
			return attr
		}
	}
	return AttributeNone
}
