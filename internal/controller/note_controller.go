package controller

import (
	"errors"
	"strings"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	query := dto.ListNotesQuery{
		Text:     ctx.Query("q"),
		TagName:  ctx.Query("tag"),
		Category: ctx.Query("category"),
	}

	res, err := c.noteService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := validateUpdate(&req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	removed, err := c.noteService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func parseNoteId(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid note id")
	}
	return uint(id), nil
}

// validateUpdate checks the fields that are present; absent fields stay
// untouched by the service so they carry no constraints here.
func validateUpdate(req *dto.UpdateNoteRequest) error {
	if req.Empty() {
		return fiber.NewError(fiber.StatusBadRequest, "No fields provided for update")
	}
	if req.Title.Set && (req.Title.Value == "" || len(req.Title.Value) > 255) {
		return fiber.NewError(fiber.StatusBadRequest, "Title must be 1-255 characters")
	}
	if req.Content.Set && req.Content.Value == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Content must not be empty")
	}
	if req.Category.Set && req.Category.Value != nil && len(*req.Category.Value) > 64 {
		return fiber.NewError(fiber.StatusBadRequest, "Category must be at most 64 characters")
	}
	if req.Tags.Set {
		for _, tag := range req.Tags.Value {
			if len(strings.TrimSpace(tag)) > 64 {
				return fiber.NewError(fiber.StatusBadRequest, "Tag names must be at most 64 characters")
			}
		}
	}
	return nil
}
