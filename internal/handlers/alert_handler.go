package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itacatech/internal/models"
	"itacatech/internal/services"
)

type AlertHandler struct {
	Service *services.AlertService
}

func NewAlertHandler(service *services.AlertService) *AlertHandler {
	return &AlertHandler{Service: service}
}

func (h *AlertHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

type addAlertRequest struct {
	Type    models.AlertType `json:"type" binding:"required"`
	Message string           `json:"message" binding:"required"`
}

func (h *AlertHandler) Create(c *gin.Context) {
	var req addAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert, err := h.Service.Add(req.Type, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert type"})
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	h.Service.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}
