package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itacatech/internal/models"
	"itacatech/internal/services"
)

type TeamHandler struct {
	Service *services.AuthService
}

func NewTeamHandler(service *services.AuthService) *TeamHandler {
	return &TeamHandler{Service: service}
}

func (h *TeamHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.TeamMembers())
}

type addMemberRequest struct {
	Name   string          `json:"name" binding:"required"`
	Email  string          `json:"email" binding:"required,email"`
	Role   models.UserRole `json:"role" binding:"required"`
	Avatar string          `json:"avatar"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Service.AddTeamMember(req.Name, req.Email, req.Role, req.Avatar)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var updates models.UserUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.UpdateTeamMember(id, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
