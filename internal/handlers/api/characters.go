package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/services/game"
)

type createCharacterRequest struct {
	Name       string                   `json:"name" binding:"required"`
	Race       string                   `json:"race" binding:"required"`
	Class      string                   `json:"className" binding:"required"`
	Background string                   `json:"background" binding:"required"`
	Stats      map[shared.Attribute]int `json:"stats" binding:"required"`
}

type addItemRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Quantity    int                    `json:"quantity"`
	Kind        character.ItemKind     `json:"type"`
	Description string                 `json:"description"`
	Properties  *shared.ItemProperties `json:"properties"`
	EquipSlot   shared.Slot            `json:"equipSlot"`
}

type removeItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
}

type adjustSpellSlotRequest struct {
	Level int `json:"level" binding:"required"`
	Delta int `json:"delta" binding:"required"`
}

type setCurrentHPRequest struct {
	HP *int `json:"hp" binding:"required"`
}

type setAttributeRequest struct {
	Attribute shared.Attribute `json:"attribute" binding:"required"`
	Score     int              `json:"score" binding:"required"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

type abilityChoiceRequest struct {
	ChoiceID string `json:"choiceId" binding:"required"`
	Option   string `json:"option" binding:"required"`
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	hero, err := h.service.CreateCharacter(c.Request.Context(), &game.CreateCharacterInput{
		CampaignID: c.Param("id"),
		Name:       req.Name,
		Race:       req.Race,
		Class:      req.Class,
		Background: req.Background,
		Stats:      req.Stats,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hero)
}

func (h *Handler) removeCharacter(c *gin.Context) {
	err := h.service.RemoveCharacter(c.Request.Context(), c.Param("id"), c.Param("characterId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), &game.AddItemInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		Name:        req.Name,
		Quantity:    req.Quantity,
		Kind:        req.Kind,
		Description: req.Description,
		Properties:  req.Properties,
		EquipSlot:   req.EquipSlot,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) removeItem(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.RemoveItem(c.Request.Context(), &game.RemoveItemInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		ItemName:    req.Name,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) equipItem(c *gin.Context) {
	err := h.service.EquipItem(c.Request.Context(), &game.EquipItemInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		ItemID:      c.Param("itemId"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) unequipItem(c *gin.Context) {
	slot := shared.ParseSlot(c.Param("slot"))
	if slot == "" {
		h.respondBindError(c, mterr.InvalidArgumentf("unknown equipment slot %q", c.Param("slot")))
		return
	}

	err := h.service.UnequipItem(c.Request.Context(), &game.UnequipItemInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		Slot:        slot,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) togglePrepared(c *gin.Context) {
	item, err := h.service.TogglePrepared(c.Request.Context(), &game.TogglePreparedInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		ItemID:      c.Param("itemId"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) adjustSpellSlot(c *gin.Context) {
	var req adjustSpellSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.AdjustSpellSlot(c.Request.Context(), &game.AdjustSpellSlotInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		Level:       req.Level,
		Delta:       req.Delta,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setCurrentHP(c *gin.Context) {
	var req setCurrentHPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.SetCurrentHP(c.Request.Context(), &game.SetCurrentHPInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		HP:          *req.HP,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setAttribute(c *gin.Context) {
	var req setAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.SetAttribute(c.Request.Context(), &game.SetAttributeInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		Attribute:   req.Attribute,
		Score:       req.Score,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateNotes(c *gin.Context) {
	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.UpdateNotes(c.Request.Context(), &game.UpdateNotesInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		Notes:       req.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) selectAbilityChoice(c *gin.Context) {
	var req abilityChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	err := h.service.SelectAbilityChoice(c.Request.Context(), &game.SelectAbilityChoiceInput{
		CampaignID:  c.Param("id"),
		CharacterID: c.Param("characterId"),
		AbilityID:   c.Param("abilityId"),
		ChoiceID:    req.ChoiceID,
		Option:      req.Option,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportHeroes(c *gin.Context) {
	data, err := h.service.ExportHeroes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="heroes.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) importHeroes(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	heroes, err := h.service.ImportHeroes(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, heroes)
}
