package controller

import (
	"errors"
	"net/url"

	"github.com/heversonalves/canon/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBibleController interface {
	RegisterRoutes(r fiber.Router)
	GetChapter(ctx *fiber.Ctx) error
}

type bibleController struct {
	bibleService service.IBibleService
}

func NewBibleController(bibleService service.IBibleService) IBibleController {
	return &bibleController{
		bibleService: bibleService,
	}
}

func (c *bibleController) RegisterRoutes(r fiber.Router) {
	r.Get("/bible/:translation/:book/:chapter", c.GetChapter)
}

func (c *bibleController) GetChapter(ctx *fiber.Ctx) error {
	translation := ctx.Params("translation")

	// Book names arrive percent-encoded ("1%20Corinthians").
	book, err := url.PathUnescape(ctx.Params("book"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book name")
	}

	chapter, err := ctx.ParamsInt("chapter")
	if err != nil || chapter < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "chapter must be a positive integer")
	}

	res, err := c.bibleService.GetChapter(ctx.Context(), translation, book, chapter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTranslationNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Translation not found")
		case errors.Is(err, service.ErrBookNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Book not found")
		case errors.Is(err, service.ErrChapterNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Chapter not found")
		}
		return err
	}

	return ctx.JSON(res)
}
