package task

import (
	"context"

	domain "github.com/example/task-board/domain/task"
)

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Draft domain.Draft `json:"draft"`
}

// CreateTaskResponse is the response for creating a task.
// Created is false when the draft had a blank title.
type CreateTaskResponse struct {
	Task    *domain.Task `json:"task,omitempty"`
	Created bool         `json:"created"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// UpdateTaskRequest is the request for updating a task.
type UpdateTaskRequest struct {
	TaskID string       `json:"task_id"`
	Patch  domain.Patch `json:"patch"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}

// PaletteRequest is the request for the color palette.
type PaletteRequest struct{}

// PaletteResponse lists the selectable colors in display order.
type PaletteResponse struct {
	Colors  []domain.Color `json:"colors"`
	Default domain.Color   `json:"default"`
}

// TaskResponse is the response for a single task lookup or update.
// Found is false when no task has the requested id.
type TaskResponse struct {
	Task  *domain.Task `json:"task,omitempty"`
	Found bool         `json:"found"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters such as the web module use it to reach the core domain.
// The boolean results report whether the operation took effect; an unknown id
// or a blank title is not an error.
type TaskPort interface {
	AddTask(ctx context.Context, draft domain.Draft) (*domain.Task, bool, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, bool, error)
	UpdateTask(ctx context.Context, taskID string, patch domain.Patch) (*domain.Task, bool, error)
	DeleteTask(ctx context.Context, taskID string) (bool, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	Palette(ctx context.Context) ([]domain.Color, error)
}
