package controller

import (
	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/pkg/serverutils"
	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDidaskalosController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
}

type didaskalosController struct {
	didaskalosService service.IDidaskalosService
}

func NewDidaskalosController(didaskalosService service.IDidaskalosService) IDidaskalosController {
	return &didaskalosController{
		didaskalosService: didaskalosService,
	}
}

func (c *didaskalosController) RegisterRoutes(r fiber.Router) {
	r.Post("/didaskalos/query", c.Query)
}

func (c *didaskalosController) Query(ctx *fiber.Ctx) error {
	var req dto.DidaskalosQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.didaskalosService.Query(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
