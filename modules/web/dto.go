package web

import (
	"time"

	domain "github.com/example/task-board/domain/task"
)

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	Tags        []string   `json:"tags"`
	Color       string     `json:"color"`
	Completed   bool       `json:"completed"`
}

// UpdateTaskRequest is the HTTP request for patching a task. Absent fields
// are left unchanged.
type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Reminder      *time.Time `json:"reminder,omitempty"`
	ClearReminder bool       `json:"clear_reminder,omitempty"`
	Tags          *[]string  `json:"tags,omitempty"`
	Color         *string    `json:"color,omitempty"`
	Completed     *bool      `json:"completed,omitempty"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	Tags        []string   `json:"tags"`
	Color       string     `json:"color"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// PaletteResponse is the HTTP response for the color palette.
type PaletteResponse struct {
	Colors  []string `json:"colors"`
	Default string   `json:"default"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (r CreateTaskRequest) toDraft() domain.Draft {
	return domain.Draft{
		Title:       r.Title,
		Description: r.Description,
		Reminder:    r.Reminder,
		Tags:        r.Tags,
		Color:       domain.Color(r.Color),
		Completed:   r.Completed,
	}
}

func (r UpdateTaskRequest) toPatch() domain.Patch {
	p := domain.Patch{
		Title:         r.Title,
		Description:   r.Description,
		Reminder:      r.Reminder,
		ClearReminder: r.ClearReminder,
		Tags:          r.Tags,
		Completed:     r.Completed,
	}
	if r.Color != nil {
		c := domain.Color(*r.Color)
		p.Color = &c
	}
	return p
}

func toTaskResponse(t domain.Task) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Reminder:    t.Reminder,
		Tags:        tags,
		Color:       string(t.Color),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}
