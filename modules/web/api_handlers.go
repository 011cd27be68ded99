package web

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/example/task-board/domain/task"
	"github.com/example/task-board/modules/task"
	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "web",
		},
	})
}

// GetPalette handles GET /api/v1/palette.
func (h *Handlers) GetPalette(c *fiber.Ctx) error {
	palette, err := h.tasks.Palette(c.Context())
	if err != nil {
		return h.apiError(c, err)
	}
	colors := make([]string, 0, len(palette))
	for _, p := range palette {
		colors = append(colors, string(p))
	}
	return c.JSON(PaletteResponse{
		Colors:  colors,
		Default: string(defaultColor(palette)),
	})
}

// CreateTask handles POST /api/v1/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	t, created, err := h.tasks.AddTask(c.Context(), req.toDraft())
	if err != nil {
		return h.apiError(c, err)
	}
	if !created || t == nil {
		return h.apiError(c, task.ErrTitleRequired)
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(*t))
}

// ListTasks handles GET /api/v1/tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.tasks.ListTasks(c.Context())
	if err != nil {
		return h.apiError(c, err)
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return c.JSON(resp)
}

// GetTask handles GET /api/v1/tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	t, err := h.findTask(c.Context(), c.Params("id"))
	if err != nil {
		return h.apiError(c, err)
	}
	return c.JSON(toTaskResponse(*t))
}

// UpdateTask handles PATCH /api/v1/tasks/:id.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return h.apiError(c, task.ErrTitleRequired)
	}

	id := c.Params("id")
	t, found, err := h.tasks.UpdateTask(c.Context(), id, req.toPatch())
	if err != nil {
		return h.apiError(c, err)
	}
	if !found || t == nil {
		return h.apiError(c, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id))
	}
	return c.JSON(toTaskResponse(*t))
}

// DeleteTaskAPI handles DELETE /api/v1/tasks/:id.
func (h *Handlers) DeleteTaskAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.tasks.DeleteTask(c.Context(), id)
	if err != nil {
		return h.apiError(c, err)
	}
	if !deleted {
		return h.apiError(c, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleTaskAPI handles POST /api/v1/tasks/:id/toggle.
func (h *Handlers) ToggleTaskAPI(c *fiber.Ctx) error {
	ctx := c.Context()
	current, err := h.findTask(ctx, c.Params("id"))
	if err != nil {
		return h.apiError(c, err)
	}

	completed := !current.Completed
	t, found, err := h.tasks.UpdateTask(ctx, current.ID, domain.Patch{Completed: &completed})
	if err != nil {
		return h.apiError(c, err)
	}
	if !found || t == nil {
		return h.apiError(c, fmt.Errorf("%w: %s", task.ErrTaskNotFound, current.ID))
	}
	return c.JSON(toTaskResponse(*t))
}

// ListActivity handles GET /api/v1/activity.
func (h *Handlers) ListActivity(c *fiber.Ctx) error {
	resp, err := h.activity.ListActivity(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return h.apiError(c, err)
	}
	return c.JSON(resp)
}

func (h *Handlers) findTask(ctx context.Context, id string) (*domain.Task, error) {
	t, found, err := h.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found || t == nil {
		return nil, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}
	return t, nil
}

// apiError writes err in the API error shape.
func (h *Handlers) apiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case errors.Is(err, task.ErrTitleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title is required",
		})
	default:
		h.logger.Error("Task request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}
}
