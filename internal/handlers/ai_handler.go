package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"itacatech/internal/gemini"
	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/services"
)

// Inline chat messages shown when the assistant cannot answer. Failures are
// part of the conversation, never a transport error to the client.
const (
	msgMissingKeyChat = "Erro: API Key não configurada. Por favor, adicione sua chave nas configurações do portal."
	msgChatFailed     = "Ocorreu um erro ao processar sua solicitação. Verifique sua chave de API nas configurações ou tente novamente."
	msgEmptyReply     = "Desculpe, não consegui gerar uma resposta agora."
)

type AIHandler struct {
	Scripts   *services.ScriptService
	Prospects *services.ProspectService
}

func NewAIHandler(scripts *services.ScriptService, prospects *services.ProspectService) *AIHandler {
	return &AIHandler{Scripts: scripts, Prospects: prospects}
}

type chatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []models.ChatMessage `json:"history"`
}

// Script answers one turn of the sales-script conversation. Gateway failures
// come back as a synthetic model message so the chat view can render them
// inline.
func (h *AIHandler) Script(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.Scripts.Chat(c.Request.Context(), req.History, req.Message)
	ok := err == nil
	switch {
	case errors.Is(err, gemini.ErrMissingKey):
		reply = msgMissingKeyChat
	case err != nil:
		reply = msgChatFailed
	case reply == "":
		reply = msgEmptyReply
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": ok,
		"message": models.ChatMessage{
			ID:   ids.New(),
			Role: models.ChatRoleModel,
			Text: reply,
		},
	})
}

type prospectRequest struct {
	Niche string `json:"niche" binding:"required"`
	City  string `json:"city" binding:"required"`
}

func (h *AIHandler) Prospect(c *gin.Context) {
	var req prospectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.Prospects.Prospect(c.Request.Context(), req.Niche, req.City)
	switch {
	case errors.Is(err, gemini.ErrMissingKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: API Key não configurada. Vá em Configurações."})
		return
	case errors.Is(err, gemini.ErrMalformedResponse), errors.Is(err, gemini.ErrEmptyResult):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Erro ao processar dados da busca. Tente novamente."})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erro de API. Verifique sua chave nas configurações."})
		return
	}

	message := "Nenhum lead novo encontrado nesta busca. Tente mudar a cidade ou nicho."
	if len(added) > 0 {
		message = fmt.Sprintf("%d novos leads de %s em %s encontrados!", len(added), req.Niche, req.City)
	}
	c.JSON(http.StatusOK, gin.H{
		"added":   len(added),
		"leads":   added,
		"message": message,
	})
}
