package controller

import (
	"errors"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/pkg/serverutils"
	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudySessionController interface {
	RegisterRoutes(r fiber.Router)
	GetLast(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
}

type studySessionController struct {
	sessionService service.IStudySessionService
}

func NewStudySessionController(sessionService service.IStudySessionService) IStudySessionController {
	return &studySessionController{
		sessionService: sessionService,
	}
}

func (c *studySessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study-sessions")
	h.Get("/last", c.GetLast)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Upsert)
}

func (c *studySessionController) GetLast(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetLast(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No study session found")
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *studySessionController) GetById(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Study session not found")
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *studySessionController) Upsert(ctx *fiber.Ctx) error {
	var req dto.StudySessionPayload
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// The path id wins over whatever the body carries, as with any upsert
	// keyed by URL.
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
