package service

import (
	"time"

	"taalpal/internal/chat"

	"github.com/google/uuid"
)

type ChatService struct {
	responder *chat.Responder
}

func NewChatService(responder *chat.Responder) *ChatService {
	return &ChatService{responder: responder}
}

type ChatMessage struct {
	Response       chat.Reply `json:"response"`
	Timestamp      time.Time  `json:"timestamp"`
	ConversationID string     `json:"conversationId"`
}

// Respond produces a canned tutor reply. The conversation id is echoed
// back (or minted) purely for the client's benefit; it does not change
// the response.
func (s *ChatService) Respond(message, conversationID string) (*ChatMessage, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if conversationID == "" {
		conversationID = "conv-" + uuid.NewString()
	}
	return &ChatMessage{
		Response:       s.responder.Respond(message),
		Timestamp:      time.Now(),
		ConversationID: conversationID,
	}, nil
}

func (s *ChatService) Suggestions() []chat.Suggestion {
	return chat.Suggestions()
}
