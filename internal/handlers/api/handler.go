// Package api exposes the game service over HTTP for the web client.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/services/game"
)

// Handler serves the campaign and session endpoints.
type Handler struct {
	service game.Service
	log     zerolog.Logger
}

// Config holds the handler dependencies
type Config struct {
	Service game.Service
	Logger  zerolog.Logger
}

// New creates the API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, mterr.InvalidArgument("cfg is required")
	}
	if cfg.Service == nil {
		return nil, mterr.InvalidArgument("cfg.Service is required")
	}

	return &Handler{
		service: cfg.Service,
		log:     cfg.Logger,
	}, nil
}

// RegisterRoutes registers the API surface on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		api.GET("/state", h.getAppState)
		api.PUT("/state/active-campaign", h.setActiveCampaign)
		api.PUT("/state/model", h.selectModel)

		api.POST("/campaigns", h.createCampaign)
		api.GET("/campaigns", h.listCampaigns)
		api.POST("/campaigns/import", h.importCampaign)

		campaignGroup := api.Group("/campaigns/:id")
		{
			campaignGroup.GET("", h.getCampaign)
			campaignGroup.PATCH("", h.updateCampaignSettings)
			campaignGroup.DELETE("", h.deleteCampaign)
			campaignGroup.GET("/export", h.exportCampaign)

			campaignGroup.POST("/messages", h.sendMessage)
			campaignGroup.POST("/rolls", h.rollDice)
			campaignGroup.POST("/log", h.addLogEntry)

			campaignGroup.POST("/characters", h.createCharacter)
			campaignGroup.GET("/characters/export", h.exportHeroes)
			campaignGroup.POST("/characters/import", h.importHeroes)

			heroGroup := campaignGroup.Group("/characters/:characterId")
			{
				heroGroup.DELETE("", h.removeCharacter)
				heroGroup.POST("/items", h.addItem)
				heroGroup.POST("/items/remove", h.removeItem)
				heroGroup.POST("/items/:itemId/equip", h.equipItem)
				heroGroup.POST("/items/:itemId/prepared", h.togglePrepared)
				heroGroup.DELETE("/equipment/:slot", h.unequipItem)
				heroGroup.POST("/spell-slots", h.adjustSpellSlot)
				heroGroup.PUT("/hp", h.setCurrentHP)
				heroGroup.PUT("/stats", h.setAttribute)
				heroGroup.PUT("/notes", h.updateNotes)
				heroGroup.POST("/abilities/:abilityId/choice", h.selectAbilityChoice)
			}
		}
	}
}
