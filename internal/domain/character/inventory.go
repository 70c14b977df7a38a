package character

import (
	"strconv"

	"github.com/mythictome/mythic-tome/internal/domain/rulebook"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// AddItemInput describes an item or spell to add to an inventory.
type AddItemInput struct {
	Name        string
	Quantity    int
	Kind        ItemKind
	Description string
	Properties  *shared.ItemProperties
	EquipSlot   shared.Slot
	Prepared    bool
}

// AddItem adds an item or spell. A case-insensitive name match against
// an existing entry increments its quantity (and overwrites its
// description, properties and equip slot when new non-empty values are
// supplied); otherwise a new entry is inserted with a fresh id. Spells
// matching the compendium auto-fill description and properties the
// caller left empty.
func (c *Character) AddItem(input *AddItemInput) (*InventoryItem, error) {
	if input == nil || input.Name == "" {
		return nil, mterr.InvalidArgument("item name is required")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	kind := input.Kind
	if kind == "" {
		kind = KindItem
	}

	description := input.Description
	properties := input.Properties
	if kind == KindSpell {
		if spell := rulebook.GetSpell(input.Name); spell != nil {
			if description == "" {
				description = spell.Description
			}
			if properties == nil && !spell.Properties.Empty() {
				props := spell.Properties
				properties = &props
			}
		}
	}

	if existing := c.FindItemByName(input.Name); existing != nil {
		existing.Quantity += quantity
		if description != "" {
			existing.Description = description
		}
		if properties != nil {
			existing.Properties = properties
		}
		if input.EquipSlot != "" && kind == KindItem {
			existing.EquipSlot = input.EquipSlot
		}
		return existing, nil
	}

	item := &InventoryItem{
		ID:          c.getIDGenerator().New(),
		Name:        input.Name,
		Quantity:    quantity,
		Kind:        kind,
		Properties:  properties,
		Description: description,
	}
	if kind == KindSpell {
		item.Prepared = input.Prepared
	} else {
		item.EquipSlot = input.EquipSlot
	}

	c.Inventory = append(c.Inventory, item)
	return item, nil
}

// RemoveQuantity decrements the named entry's quantity. A result of
// zero or less deletes the entry entirely, including any equipped-slot
// reference to it.
func (c *Character) RemoveQuantity(name string, quantity int) (*InventoryItem, error) {
	item := c.FindItemByName(name)
	if item == nil {
		return nil, mterr.NotFoundf("item %q not found in inventory", name)
	}
	if quantity < 1 {
		quantity = 1
	}

	item.Quantity -= quantity
	if item.Quantity <= 0 {
		c.deleteItem(item.ID)
	}
	return item, nil
}

// deleteItem removes an entry from inventory and scrubs any slot
// reference to it (cascade-unequip).
func (c *Character) deleteItem(id string) {
	for i, item := range c.Inventory {
		if item.ID == id {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			break
		}
	}
	for slot, equippedID := range c.EquippedItems {
		if equippedID == id {
			delete(c.EquippedItems, slot)
		}
	}
}

// Equip assigns the item's declared slot to its id, silently replacing
// whatever occupied the slot. The previous occupant stays in inventory,
// merely unequipped.
func (c *Character) Equip(itemID string) error {
	item := c.FindItem(itemID)
	if item == nil {
		return mterr.NotFoundf("item %q not found in inventory", itemID)
	}
	if item.Kind != KindItem {
		return mterr.Validation("spells cannot be equipped")
	}
	if item.EquipSlot == "" {
		return mterr.Validationf("item %q declares no equip slot", item.Name)
	}
	if shared.ParseSlot(string(item.EquipSlot)) == "" {
		return mterr.Validationf("item %q declares unknown equip slot %q", item.Name, item.EquipSlot)
	}

	if c.EquippedItems == nil {
		c.EquippedItems = make(map[shared.Slot]string)
	}
	c.EquippedItems[item.EquipSlot] = item.ID
	return nil
}

// EquipToSlot assigns an explicit slot, overriding the item's declared
// slot. Used by the mutation protocol, where the engine picks the slot.
func (c *Character) EquipToSlot(itemID string, slot shared.Slot) error {
	item := c.FindItem(itemID)
	if item == nil {
		return mterr.NotFoundf("item %q not found in inventory", itemID)
	}
	if item.Kind != KindItem {
		return mterr.Validation("spells cannot be equipped")
	}
	if shared.ParseSlot(string(slot)) == "" {
		return mterr.InvalidArgumentf("unknown equip slot %q", slot)
	}

	if c.EquippedItems == nil {
		c.EquippedItems = make(map[shared.Slot]string)
	}
	c.EquippedItems[slot] = item.ID
	return nil
}

// Unequip empties a slot. A no-op when the slot is already empty.
func (c *Character) Unequip(slot shared.Slot) {
	delete(c.EquippedItems, slot)
}

// IsEquipped reports whether the item id occupies any slot.
func (c *Character) IsEquipped(itemID string) bool {
	for _, id := range c.EquippedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// TogglePrepared flips a spell's prepared flag. Preparing is refused
// when the class enforces a cap and the prepared count has reached it;
// un-preparing is always permitted. The refusal is a hard precondition
// the caller must surface, not retry.
func (c *Character) TogglePrepared(itemID string) (*InventoryItem, error) {
	item := c.FindItem(itemID)
	if item == nil {
		return nil, mterr.NotFoundf("spell %q not found", itemID)
	}
	if item.Kind != KindSpell {
		return nil, mterr.Validationf("%q is not a spell", item.Name)
	}

	if !item.Prepared {
		limit := c.MaxPreparedSpells()
		if limit < UnlimitedPreparedThreshold && c.PreparedSpellCount() >= limit {
			return nil, mterr.Validationf("cannot prepare more spells: the limit is %d (level + modifier)", limit).
				WithMeta("limit", limit)
		}
	}

	item.Prepared = !item.Prepared
	return item, nil
}

// AdjustSpellSlot applies a delta to one slot level's current count,
// clamped to [0, max].
func (c *Character) AdjustSpellSlot(level int, delta int) error {
	pool, ok := c.SpellSlots[strconv.Itoa(level)]
	if !ok {
		return mterr.NotFoundf("no spell slots at level %d", level)
	}

	current := pool.Current + delta
	if current < 0 {
		current = 0
	}
	if current > pool.Max {
		current = pool.Max
	}
	pool.Current = current
	return nil
}

// SetSpellSlots replaces the character's entire spell-slot mapping
// (full replace, not merge). Each pool's current is clamped to
// [0, max]. Levels outside 1-9 are rejected.
func (c *Character) SetSpellSlots(pools map[int]SpellSlotPool) error {
	for level := range pools {
		if level < 1 || level > 9 {
			return mterr.InvalidArgumentf("spell slot level %d out of range", level)
		}
	}

	slots := make(map[string]*SpellSlotPool, len(pools))
	for level, pool := range pools {
		p := pool
		if p.Current < 0 {
			p.Current = 0
		}
		if p.Current > p.Max {
			p.Current = p.Max
		}
		slots[strconv.Itoa(level)] = &p
	}
	c.SpellSlots = slots
	return nil
}
