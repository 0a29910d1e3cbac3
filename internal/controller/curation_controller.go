package controller

import (
	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/pkg/serverutils"
	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICurationController interface {
	RegisterRoutes(r fiber.Router)
	ListSources(ctx *fiber.Ctx) error
	CreateSource(ctx *fiber.Ctx) error
	ListItems(ctx *fiber.Ctx) error
	CreateItem(ctx *fiber.Ctx) error
}

type curationController struct {
	curationService service.ICurationService
}

func NewCurationController(curationService service.ICurationService) ICurationController {
	return &curationController{
		curationService: curationService,
	}
}

func (c *curationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/curadoria")
	h.Get("/sources", c.ListSources)
	h.Post("/sources", c.CreateSource)
	h.Get("/items", c.ListItems)
	h.Post("/items", c.CreateItem)
}

func (c *curationController) ListSources(ctx *fiber.Ctx) error {
	res, err := c.curationService.ListSources(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *curationController) CreateSource(ctx *fiber.Ctx) error {
	var req dto.CurationSourcePayload
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.curationService.CreateSource(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *curationController) ListItems(ctx *fiber.Ctx) error {
	res, err := c.curationService.ListItems(ctx.Context(), ctx.Query("source_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *curationController) CreateItem(ctx *fiber.Ctx) error {
	var req dto.CurationItemPayload
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.curationService.CreateItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
