package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itacatech/internal/models"
	"itacatech/internal/services"
)

type SettingsHandler struct {
	Service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: service}
}

// Get returns all settings groups. The stored API key is masked; only its
// presence is reported.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings := h.Service.Get()
	c.JSON(http.StatusOK, gin.H{
		"apiKeyConfigured": settings.APIKey != "",
		"riskProfile":      settings.RiskProfile,
		"salesGoals":       settings.SalesGoals,
	})
}

func (h *SettingsHandler) SetAPIKey(c *gin.Context) {
	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetAPIKey(req.APIKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) SetRiskProfile(c *gin.Context) {
	var req struct {
		RiskProfile *int `json:"riskProfile" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetRiskProfile(*req.RiskProfile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) SetSalesGoals(c *gin.Context) {
	var goals models.SalesGoals
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetSalesGoals(goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
