package controller

import (
	"errors"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/pkg/serverutils"
	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHomileticsController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
}

type homileticsController struct {
	homileticsService service.IHomileticsService
}

func NewHomileticsController(homileticsService service.IHomileticsService) IHomileticsController {
	return &homileticsController{
		homileticsService: homileticsService,
	}
}

func (c *homileticsController) RegisterRoutes(r fiber.Router) {
	r.Get("/homiletics", c.Get)
	r.Put("/homiletics", c.Save)
}

func (c *homileticsController) Get(ctx *fiber.Ctx) error {
	res, err := c.homileticsService.Get(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrHomileticsNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Homiletics not found")
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *homileticsController) Save(ctx *fiber.Ctx) error {
	var req dto.HomileticsPayload
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.homileticsService.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
