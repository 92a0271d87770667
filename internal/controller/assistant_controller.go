package controller

import (
	"chattyg-be/internal/dto"
	"chattyg-be/internal/pkg/serverutils"
	"chattyg-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	ShowConversation(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("query", c.Ask)
	h.Get("conversation", c.ShowConversation)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.AskAssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success query assistant", res))
}

func (c *assistantController) ShowConversation(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.ShowConversation(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}
