package web

import (
	"context"
	"fmt"

	domain "github.com/example/task-board/domain/task"
	"github.com/gofiber/fiber/v2"
)

// Page handles GET /. It renders the board with the creation form and item
// editors the query asks for.
func (h *Handlers) Page(c *fiber.Ctx) error {
	return h.renderBoard(c, parsePageState(c), nil, nil)
}

// SubmitCreateForm handles POST /tasks, every button of the creation form.
func (h *Handlers) SubmitCreateForm(c *fiber.Ctx) error {
	ctx := c.Context()
	state := parsePageState(c)

	var in formInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}

	palette, err := h.tasks.Palette(ctx)
	if err != nil {
		return err
	}
	form := NewTaskForm("new", palette, nil)
	form.OnSubmit = h.addTask
	// Closing the form is the redirect below; nothing else to undo.
	form.OnCancel = func(context.Context) error { return nil }

	outcome, err := form.Dispatch(ctx, in)
	if err != nil {
		return err
	}
	if outcome != formOpen {
		return c.Redirect(state.withNew(false).url("/"), fiber.StatusSeeOther)
	}
	return h.renderBoard(c, state.withNew(true), form, nil)
}

// SubmitEditForm handles POST /tasks/:id, every button of an item editor.
func (h *Handlers) SubmitEditForm(c *fiber.Ctx) error {
	ctx := c.Context()
	state := parsePageState(c)
	id := c.Params("id")

	var in formInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}

	item, err := h.loadItem(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return c.Redirect(state.withoutEdit(id).url("/"), fiber.StatusSeeOther)
	}

	item.BeginEdit()
	if _, err := item.Form.Dispatch(ctx, in); err != nil {
		return err
	}
	if !item.Editing {
		return c.Redirect(state.withoutEdit(id).url("/"), fiber.StatusSeeOther)
	}
	return h.renderBoard(c, state.withEdit(id), nil, item)
}

// ToggleTask handles POST /tasks/:id/toggle.
func (h *Handlers) ToggleTask(c *fiber.Ctx) error {
	ctx := c.Context()
	state := parsePageState(c)

	item, err := h.loadItem(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	if item != nil {
		if err := item.ToggleComplete(ctx); err != nil {
			return err
		}
	}
	return c.Redirect(state.url("/"), fiber.StatusSeeOther)
}

// DeleteTask handles POST /tasks/:id/delete.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	ctx := c.Context()
	state := parsePageState(c)
	id := c.Params("id")

	item, err := h.loadItem(ctx, id)
	if err != nil {
		return err
	}
	if item != nil {
		if err := item.Delete(ctx); err != nil {
			return err
		}
	}
	return c.Redirect(state.withoutEdit(id).url("/"), fiber.StatusSeeOther)
}

// renderBoard renders the page. createForm and editing, when set, replace the
// freshly built creation form and the matching item so typed values survive.
func (h *Handlers) renderBoard(c *fiber.Ctx, state pageState, createForm *TaskForm, editing *TaskItem) error {
	ctx := c.Context()

	tasks, err := h.tasks.ListTasks(ctx)
	if err != nil {
		return err
	}
	palette, err := h.tasks.Palette(ctx)
	if err != nil {
		return err
	}

	state = state.retain(tasks)
	if state.New && createForm == nil {
		createForm = NewTaskForm("new", palette, nil)
	}

	items := make([]*TaskItem, 0, len(tasks))
	for _, t := range tasks {
		if editing != nil && editing.Task.ID == t.ID {
			items = append(items, editing)
			continue
		}
		item := h.newItem(t, palette)
		if state.editing(t.ID) {
			item.BeginEdit()
		}
		items = append(items, item)
	}

	return render(c, "page.html", buildPage(state, items, createForm))
}

// loadItem returns nil without error when the task does not exist.
func (h *Handlers) loadItem(ctx context.Context, id string) (*TaskItem, error) {
	t, found, err := h.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found || t == nil {
		return nil, nil
	}
	palette, err := h.tasks.Palette(ctx)
	if err != nil {
		return nil, err
	}
	return h.newItem(*t, palette), nil
}

func (h *Handlers) newItem(t domain.Task, palette []domain.Color) *TaskItem {
	return NewTaskItem(t, palette, h.updateTask, h.deleteTask)
}

func (h *Handlers) addTask(ctx context.Context, draft domain.Draft) error {
	if _, _, err := h.tasks.AddTask(ctx, draft); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return nil
}

func (h *Handlers) updateTask(ctx context.Context, id string, patch domain.Patch) error {
	if _, _, err := h.tasks.UpdateTask(ctx, id, patch); err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	return nil
}

func (h *Handlers) deleteTask(ctx context.Context, id string) error {
	if _, err := h.tasks.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}
