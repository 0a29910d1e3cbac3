package controller

import (
	"errors"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/pkg/serverutils"
	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITranslationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	GetData(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type translationController struct {
	translationService service.ITranslationService
}

func NewTranslationController(translationService service.ITranslationService) ITranslationController {
	return &translationController{
		translationService: translationService,
	}
}

func (c *translationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/translations")
	h.Get("", c.List)
	h.Post("", c.Upload)
	h.Get("/:id", c.GetData)
	h.Delete("/:id", c.Delete)
}

func (c *translationController) List(ctx *fiber.Ctx) error {
	res, err := c.translationService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *translationController) Upload(ctx *fiber.Ctx) error {
	var req dto.TranslationUploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.translationService.Upload(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *translationController) GetData(ctx *fiber.Ctx) error {
	data, err := c.translationService.GetData(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Translation not found")
		}
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (c *translationController) Delete(ctx *fiber.Ctx) error {
	if err := c.translationService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"status": "deleted"})
}
