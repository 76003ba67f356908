package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type tagController struct {
	noteService service.INoteService
}

func NewTagController(noteService service.INoteService) ITagController {
	return &tagController{
		noteService: noteService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	r.Get("/tags", c.List)
}

func (c *tagController) List(ctx *fiber.Ctx) error {
	names, err := c.noteService.ListTagNames(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tags", dto.ListTagsResponse{
		Tags: names,
	}))
}
