package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
	"github.com/mythictome/mythic-tome/internal/services/game"
)

type createCampaignRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	CustomRules string            `json:"customRules"`
	Difficulty  shared.Difficulty `json:"difficulty"`
}

type updateCampaignSettingsRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	CustomRules *string            `json:"customRules"`
	Difficulty  *shared.Difficulty `json:"difficulty"`
}

type setActiveCampaignRequest struct {
	CampaignID string `json:"campaignId" binding:"required"`
}

type selectModelRequest struct {
	Model string `json:"model" binding:"required"`
}

func (h *Handler) createCampaign(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	created, err := h.service.CreateCampaign(c.Request.Context(), &game.CreateCampaignInput{
		Name:        req.Name,
		Description: req.Description,
		CustomRules: req.CustomRules,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listCampaigns(c *gin.Context) {
	list, err := h.service.ListCampaigns(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getCampaign(c *gin.Context) {
	found, err := h.service.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) updateCampaignSettings(c *gin.Context) {
	var req updateCampaignSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	updated, err := h.service.UpdateCampaignSettings(c.Request.Context(), &game.UpdateCampaignSettingsInput{
		CampaignID:  c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		CustomRules: req.CustomRules,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteCampaign(c *gin.Context) {
	if err := h.service.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getAppState(c *gin.Context) {
	state, err := h.service.GetAppState(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) setActiveCampaign(c *gin.Context) {
	var req setActiveCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}
	if err := h.service.SetActiveCampaign(c.Request.Context(), req.CampaignID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) selectModel(c *gin.Context) {
	var req selectModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}
	if err := h.service.SelectModel(c.Request.Context(), req.Model); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportCampaign(c *gin.Context) {
	data, err := h.service.ExportCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="campaign.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) importCampaign(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	imported, err := h.service.ImportCampaign(c.Request.Context(), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imported)
}
