package web

import (
	"context"
	"time"

	domain "github.com/example/task-board/domain/task"
)

// reminderDisplayLayout renders e.g. "Mar 5, 2:30 PM".
const reminderDisplayLayout = "Jan 2, 3:04 PM"

// UpdateFunc applies a patch to the task with the given id.
type UpdateFunc func(ctx context.Context, id string, patch domain.Patch) error

// DeleteFunc removes the task with the given id.
type DeleteFunc func(ctx context.Context, id string) error

// TaskItem renders one task in display or edit mode.
type TaskItem struct {
	Task    domain.Task
	Form    *TaskForm
	Editing bool

	palette  []domain.Color
	onUpdate UpdateFunc
	onDelete DeleteFunc
}

// NewTaskItem creates an item in display mode.
func NewTaskItem(t domain.Task, palette []domain.Color, onUpdate UpdateFunc, onDelete DeleteFunc) *TaskItem {
	return &TaskItem{
		Task:     t,
		palette:  palette,
		onUpdate: onUpdate,
		onDelete: onDelete,
	}
}

// BeginEdit switches to edit mode with a form pre-populated from the task.
func (i *TaskItem) BeginEdit() {
	i.Editing = true
	i.Form = NewTaskForm(i.Task.ID, i.palette, &i.Task)
	i.Form.OnSubmit = i.submitEdit
	i.Form.OnCancel = i.cancelEdit
}

func (i *TaskItem) submitEdit(ctx context.Context, draft domain.Draft) error {
	if err := i.onUpdate(ctx, i.Task.ID, draft.Patch()); err != nil {
		return err
	}
	i.Task = draft.Patch().Apply(i.Task)
	i.endEdit()
	return nil
}

func (i *TaskItem) cancelEdit(context.Context) error {
	i.endEdit()
	return nil
}

func (i *TaskItem) endEdit() {
	i.Editing = false
	i.Form = nil
}

// ToggleComplete flips the completed flag and leaves every other field alone.
func (i *TaskItem) ToggleComplete(ctx context.Context) error {
	completed := !i.Task.Completed
	if err := i.onUpdate(ctx, i.Task.ID, domain.Patch{Completed: &completed}); err != nil {
		return err
	}
	i.Task.Completed = completed
	return nil
}

// Delete asks the owner to remove the task.
func (i *TaskItem) Delete(ctx context.Context) error {
	return i.onDelete(ctx, i.Task.ID)
}

// ReminderLabel is the formatted reminder, or "" when none is set.
func (i *TaskItem) ReminderLabel() string {
	if i.Task.Reminder == nil {
		return ""
	}
	return formatReminder(*i.Task.Reminder)
}

func formatReminder(t time.Time) string {
	return t.In(time.Local).Format(reminderDisplayLayout)
}
