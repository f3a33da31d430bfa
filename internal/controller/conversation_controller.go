package controller

import (
	"nko-content-assistant/internal/dto"
	"nko-content-assistant/internal/pkg/serverutils"
	"nko-content-assistant/internal/service"
	"nko-content-assistant/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Event(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
}

func NewConversationController(service service.IConversationService) IConversationController {
	return &conversationController{service: service}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation/v1")
	h.Post("/event", c.Event)
}

func (c *conversationController) Event(ctx *fiber.Ctx) error {
	var req dto.ConversationEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// A missing conversation id means a brand new conversation.
	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}

	inbound := store.Inbound{
		Kind:  store.InboundKind(req.Kind),
		Value: req.Value,
	}

	out, err := c.service.HandleEvent(ctx.Context(), req.ConversationID, inbound)
	if err != nil {
		return err
	}

	res := dto.ConversationEventResponse{
		ConversationID: req.ConversationID,
		Messages:       out.Messages,
		Options:        out.Options,
		Image:          out.Image,
	}
	return ctx.JSON(serverutils.SuccessResponse("Success handle event", res))
}
