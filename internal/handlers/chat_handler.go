package handlers

import (
	"net/http"
	"strconv"

	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

type chatMessageRequest struct {
	Message        string `json:"message"`
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Message is required")
		return
	}
	msg, err := h.Service.Respond(req.Message, req.ConversationID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, msg)
}

// GetHistory keeps the conversation-history contract without storing
// conversations: it always serves an empty page.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    []gin.H{},
		"pagination": gin.H{
			"total":   0,
			"offset":  offset,
			"limit":   limit,
			"hasMore": false,
		},
	})
}

func (h *ChatHandler) GetSuggestions(c *gin.Context) {
	utils.SuccessResponse(c, h.Service.Suggestions())
}
