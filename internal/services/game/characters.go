package game

import (
	"context"
	"fmt"

	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// CreateCharacter rolls a new hero into a campaign's party. The first
// hero of an empty party starts a fresh session, clearing the dice
// history and game log.
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	c, err := s.repository.Get(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	hero, err := character.New(&character.CreateInput{
		Name:        input.Name,
		Race:        input.Race,
		Class:       input.Class,
		Background:  input.Background,
		Stats:       input.Stats,
		IDGenerator: s.idGen,
	})
	if err != nil {
		return nil, err
	}

	freshParty := len(c.Party) == 0
	if freshParty {
		c.ClearSessionHistory()
	}
	if err := c.AddCharacter(hero); err != nil {
		return nil, err
	}

	if freshParty {
		c.AppendMessage(shared.RoleModel, fmt.Sprintf("Vaša družina (%s) sa vydáva na cestu. Dungeon Master je pripravený.", hero.Name))
	} else {
		c.AppendMessage(shared.RoleModel, fmt.Sprintf("K družine sa pripojili noví hrdinovia: %s.", hero.Name))
	}

	c.Touch(s.now())
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Str("campaign_id", c.ID).Str("character_id", hero.ID).
		Str("class", hero.Class).Msg("character created")
	return hero, nil
}

// RemoveCharacter drops a hero from the party
func (s *service) RemoveCharacter(ctx context.Context, campaignID, characterID string) error {
	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return err
	}
	if err := c.RemoveCharacter(characterID); err != nil {
		return err
	}
	return s.repository.Update(ctx, c)
}

// withCharacter loads the campaign, resolves the hero, applies the
// mutation and commits the campaign.
func (s *service) withCharacter(ctx context.Context, campaignID, characterID string, mutate func(*character.Character) error) error {
	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return err
	}

	hero := c.FindCharacterByID(characterID)
	if hero == nil {
		return mterr.NotFoundf("character %q not found in campaign %q", characterID, campaignID).
			WithMeta("campaign_id", campaignID)
	}

	if err := mutate(hero); err != nil {
		return err
	}

	c.Touch(s.now())
	return s.repository.Update(ctx, c)
}

// AddItem adds an item or spell to a hero's inventory
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*character.InventoryItem, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	var item *character.InventoryItem
	err := s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		var err error
		item, err = hero.AddItem(&character.AddItemInput{
			Name:        input.Name,
			Quantity:    input.Quantity,
			Kind:        input.Kind,
			Description: input.Description,
			Properties:  input.Properties,
			EquipSlot:   input.EquipSlot,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem decrements or removes an inventory entry
func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		_, err := hero.RemoveQuantity(input.ItemName, input.Quantity)
		return err
	})
}

// EquipItem equips an inventory item into its declared slot
func (s *service) EquipItem(ctx context.Context, input *EquipItemInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		return hero.Equip(input.ItemID)
	})
}

// UnequipItem empties one equipment slot
func (s *service) UnequipItem(ctx context.Context, input *UnequipItemInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		hero.Unequip(input.Slot)
		return nil
	})
}

// TogglePrepared flips a spell's prepared flag
func (s *service) TogglePrepared(ctx context.Context, input *TogglePreparedInput) (*character.InventoryItem, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	var item *character.InventoryItem
	err := s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		var err error
		item, err = hero.TogglePrepared(input.ItemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustSpellSlot spends or restores one spell slot
func (s *service) AdjustSpellSlot(ctx context.Context, input *AdjustSpellSlotInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		return hero.AdjustSpellSlot(input.Level, input.Delta)
	})
}

// SetCurrentHP sets a hero's current hit points
func (s *service) SetCurrentHP(ctx context.Context, input *SetCurrentHPInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		hero.SetCurrentHP(input.HP)
		return nil
	})
}

// SetAttribute overwrites one ability score
func (s *service) SetAttribute(ctx context.Context, input *SetAttributeInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		return hero.SetAttribute(input.Attribute, input.Score)
	})
}

// UpdateNotes replaces a hero's notes
func (s *service) UpdateNotes(ctx context.Context, input *UpdateNotesInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		hero.Notes = input.Notes
		return nil
	})
}

// SelectAbilityChoice records a choice on one of a hero's abilities
func (s *service) SelectAbilityChoice(ctx context.Context, input *SelectAbilityChoiceInput) error {
	if input == nil {
		return mterr.InvalidArgument("input is required")
	}
	return s.withCharacter(ctx, input.CampaignID, input.CharacterID, func(hero *character.Character) error {
		return hero.SelectAbilityChoice(input.AbilityID, input.ChoiceID, input.Option)
	})
}
