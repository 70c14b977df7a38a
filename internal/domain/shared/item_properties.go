package shared

// ItemProperties is the optional properties bag on an inventory entry.
// All fields are independently optional.
type ItemProperties struct {
	// AC is an armor-class bonus granted while equipped
	AC int `json:"ac,omitempty"`

	// Damage is a dice expression, e.g. "1d8"
	Damage string `json:"damage,omitempty"`

	// DamageType qualifies Damage, e.g. "sečné"
	DamageType string `json:"damageType,omitempty"`

	// Healing is a dice expression for restorative items and spells
	Healing string `json:"healing,omitempty"`
}

// Empty reports whether no property is set.
func (p ItemProperties) Empty() bool {
	return p == ItemProperties{}
}
