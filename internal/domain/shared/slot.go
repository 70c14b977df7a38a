package shared

// Slot is an equipment slot on a character. At most one inventory item
// occupies a slot at any time. Values match the serialized camelCase
// form of campaign exports.
type Slot string

const (
	SlotMainHand Slot = "mainHand"
	SlotOffHand  Slot = "offHand"
	SlotArmor    Slot = "armor"
	SlotHead     Slot = "head"
	SlotNeck     Slot = "neck"
	SlotBack     Slot = "back"
	SlotHands    Slot = "hands"
	SlotWaist    Slot = "waist"
	SlotFeet     Slot = "feet"
	SlotRing1    Slot = "ring1"
	SlotRing2    Slot = "ring2"
)

var Slots = []Slot{
	SlotMainHand, SlotOffHand, SlotArmor, SlotHead, SlotNeck, SlotBack,
	SlotHands, SlotWaist, SlotFeet, SlotRing1, SlotRing2,
}

// ParseSlot resolves a string to a known slot, "" if unknown.
func ParseSlot(s string) Slot {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot
		}
	}
	return ""
}
