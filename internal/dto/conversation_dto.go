package dto

import "nko-content-assistant/pkg/store"

// ConversationEventRequest is one operator event delivered by the
// transport: a menu selection or a free-text message. An empty
// conversation_id starts a new conversation.
type ConversationEventRequest struct {
	ConversationID string `json:"conversation_id"`
	Kind           string `json:"kind" validate:"required,oneof=select text"`
	Value          string `json:"value"`
}

// ConversationEventResponse is everything the transport should render
// back: ordered messages, an optional menu and an optional image.
type ConversationEventResponse struct {
	ConversationID string              `json:"conversation_id"`
	Messages       []string            `json:"messages"`
	Options        []store.Option      `json:"options,omitempty"`
	Image          *store.ImagePayload `json:"image,omitempty"`
}
