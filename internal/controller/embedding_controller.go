package controller

import (
	"chattyg-be/internal/dto"
	"chattyg-be/internal/pkg/serverutils"
	"chattyg-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmbeddingController interface {
	RegisterRoutes(r fiber.Router)
	Sync(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type embeddingController struct {
	syncService service.IEmbeddingSyncService
}

func NewEmbeddingController(syncService service.IEmbeddingSyncService) IEmbeddingController {
	return &embeddingController{
		syncService: syncService,
	}
}

func (c *embeddingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/embeddings/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("sync", c.Sync)
	h.Post("generate", c.Generate)
}

// Sync triggers one backfill pass on demand, in addition to the periodic worker.
func (c *embeddingController) Sync(ctx *fiber.Ctx) error {
	var req dto.SyncEmbeddingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		// Empty body is fine, the configured batch size applies
		req = dto.SyncEmbeddingsRequest{}
	}

	res, err := c.syncService.SyncBatch(ctx.Context(), req.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sync embeddings", res))
}

func (c *embeddingController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateEmbeddingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	if err := c.syncService.GenerateForMessage(ctx.Context(), req.MessageId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate embedding", dto.GenerateEmbeddingResponse{
		MessageId: req.MessageId,
	}))
}
