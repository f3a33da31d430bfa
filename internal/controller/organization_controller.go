package controller

import (
	"strconv"

	"nko-content-assistant/internal/dto"
	"nko-content-assistant/internal/pkg/serverutils"
	"nko-content-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrganizationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Posts(ctx *fiber.Ctx) error
}

type organizationController struct {
	service service.IOrganizationService
}

func NewOrganizationController(service service.IOrganizationService) IOrganizationController {
	return &organizationController{service: service}
}

func (c *organizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/organization/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id/posts", c.Posts)
}

func (c *organizationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all organizations", res))
}

func (c *organizationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create organization", res))
}

func (c *organizationController) Posts(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid organization id")
	}

	res, err := c.service.Posts(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get organization posts", res))
}
