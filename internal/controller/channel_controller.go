package controller

import (
	"chattyg-be/internal/dto"
	"chattyg-be/internal/pkg/serverutils"
	"chattyg-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChannelController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type channelController struct {
	channelService service.IChannelService
}

func NewChannelController(channelService service.IChannelService) IChannelController {
	return &channelController{
		channelService: channelService,
	}
}

func (c *channelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/channel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
}

func (c *channelController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateChannelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.channelService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create channel", res))
}

func (c *channelController) List(ctx *fiber.Ctx) error {
	res, err := c.channelService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list channels", res))
}
