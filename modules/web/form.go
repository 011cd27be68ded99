package web

import (
	"context"
	"strings"
	"time"

	domain "github.com/example/task-board/domain/task"
)

// reminderLayout matches the value of an <input type="datetime-local">.
const reminderLayout = "2006-01-02T15:04"

// Form actions carried by the submit buttons of a task form.
const (
	actionSave   = "save"
	actionEnter  = "enter"
	actionAddTag = "add-tag"
	actionCancel = "cancel"
)

// SubmitFunc receives the draft built by a task form.
type SubmitFunc func(ctx context.Context, draft domain.Draft) error

// CancelFunc is invoked when a task form is dismissed.
type CancelFunc func(ctx context.Context) error

// formOutcome tells the caller what a dispatched form action did.
type formOutcome int

const (
	formOpen formOutcome = iota
	formSubmitted
	formCancelled
)

// formInput is one submission of a task form, including the draft fields
// round-tripped through the page.
type formInput struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Reminder    string   `form:"reminder"`
	Tags        []string `form:"tags"`
	NewTag      string   `form:"new_tag"`
	Color       string   `form:"color"`
	Action      string   `form:"action"`
	RemoveTag   string   `form:"remove_tag"`
	SelectColor string   `form:"select_color"`
}

// TaskForm is the shared create/edit form. It holds the draft while open and
// hands it to OnSubmit; it never touches the task store.
type TaskForm struct {
	ID          string
	Title       string
	Description string
	Reminder    string
	Tags        []string
	NewTag      string
	Color       domain.Color
	Palette     []domain.Color

	editing   bool
	completed bool

	OnSubmit SubmitFunc
	OnCancel CancelFunc
}

// NewTaskForm creates a form. When initial is non-nil the form edits that
// task and starts from its values.
func NewTaskForm(id string, palette []domain.Color, initial *domain.Task) *TaskForm {
	f := &TaskForm{
		ID:      id,
		Tags:    []string{},
		Color:   defaultColor(palette),
		Palette: palette,
	}
	if initial == nil {
		return f
	}

	f.editing = true
	f.completed = initial.Completed
	f.Title = initial.Title
	f.Description = initial.Description
	if initial.Reminder != nil {
		f.Reminder = initial.Reminder.In(time.Local).Format(reminderLayout)
	}
	f.Tags = append(f.Tags, initial.Tags...)
	if initial.Color != "" {
		f.Color = initial.Color
	}
	return f
}

func defaultColor(palette []domain.Color) domain.Color {
	if len(palette) == 0 {
		return domain.DefaultColor
	}
	return palette[0]
}

// Editing reports whether the form was opened for an existing task.
func (f *TaskForm) Editing() bool {
	return f.editing
}

// SubmitLabel is the caption of the primary button.
func (f *TaskForm) SubmitLabel() string {
	if f.editing {
		return "Update Task"
	}
	return "Add Task"
}

// AddTag moves the pending tag input into the tag list. Empty and
// already-present values are ignored and the input is kept.
func (f *TaskForm) AddTag() bool {
	tags, added := domain.AddTag(f.Tags, f.NewTag)
	if !added {
		return false
	}
	f.Tags = tags
	f.NewTag = ""
	return true
}

// RemoveTag drops tag from the working list.
func (f *TaskForm) RemoveTag(tag string) {
	f.Tags = domain.RemoveTag(f.Tags, tag)
}

// SelectColor changes the selection if c belongs to the palette.
func (f *TaskForm) SelectColor(c domain.Color) bool {
	for _, p := range f.Palette {
		if p == c {
			f.Color = c
			return true
		}
	}
	return false
}

// Draft builds the draft the form would submit.
func (f *TaskForm) Draft() domain.Draft {
	return domain.Draft{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Reminder:    parseReminder(f.Reminder),
		Tags:        append([]string{}, f.Tags...),
		Color:       f.Color,
		Completed:   f.completed,
	}
}

// Submit passes the draft to OnSubmit. A blank title blocks submission
// silently and reports false.
func (f *TaskForm) Submit(ctx context.Context) (bool, error) {
	if strings.TrimSpace(f.Title) == "" {
		return false, nil
	}
	if f.OnSubmit == nil {
		return true, nil
	}
	return true, f.OnSubmit(ctx, f.Draft())
}

// Cancel dismisses the form without submitting.
func (f *TaskForm) Cancel(ctx context.Context) error {
	if f.OnCancel == nil {
		return nil
	}
	return f.OnCancel(ctx)
}

// Dispatch loads a submission into the form and performs the action that
// triggered it.
func (f *TaskForm) Dispatch(ctx context.Context, in formInput) (formOutcome, error) {
	f.load(in)

	if in.RemoveTag != "" {
		f.RemoveTag(in.RemoveTag)
		return formOpen, nil
	}
	if in.SelectColor != "" {
		f.SelectColor(domain.Color(in.SelectColor))
		return formOpen, nil
	}

	switch in.Action {
	case actionAddTag:
		f.AddTag()
		return formOpen, nil
	case actionSave, actionEnter:
		// Enter with a pending tag adds the tag instead of submitting.
		if in.Action == actionEnter && strings.TrimSpace(f.NewTag) != "" {
			f.AddTag()
			return formOpen, nil
		}
		submitted, err := f.Submit(ctx)
		if err != nil {
			return formOpen, err
		}
		if !submitted {
			return formOpen, nil
		}
		return formSubmitted, nil
	case actionCancel:
		if err := f.Cancel(ctx); err != nil {
			return formOpen, err
		}
		return formCancelled, nil
	default:
		return formOpen, nil
	}
}

func (f *TaskForm) load(in formInput) {
	f.Title = in.Title
	f.Description = in.Description
	f.Reminder = strings.TrimSpace(in.Reminder)
	f.Tags = domain.NormalizeTags(in.Tags)
	f.NewTag = in.NewTag
	f.SelectColor(domain.Color(in.Color))
}

// parseReminder reads a datetime-local value in the server's zone.
// Empty or malformed input yields no reminder.
func parseReminder(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{reminderLayout, reminderLayout + ":05"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
