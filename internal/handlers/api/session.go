package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mythictome/mythic-tome/internal/services/game"
)

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type rollDiceRequest struct {
	Die int `json:"die" binding:"required"`
}

type addLogEntryRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	out, err := h.service.SendMessage(c.Request.Context(), &game.SendMessageInput{
		CampaignID: c.Param("id"),
		Text:       req.Text,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": out.Messages,
		"campaign": out.Campaign,
	})
}

func (h *Handler) rollDice(c *gin.Context) {
	var req rollDiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	out, err := h.service.RollDice(c.Request.Context(), &game.RollDiceInput{
		CampaignID: c.Param("id"),
		Die:        req.Die,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": out.Result,
		"roll":   out.Roll,
	})
}

func (h *Handler) addLogEntry(c *gin.Context) {
	var req addLogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	entry, err := h.service.AddLogEntry(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if entry == nil {
		// duplicate line, dropped
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
