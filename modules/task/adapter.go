package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/task-board/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// AddTask creates a task via the create-task service.
func (a *taskAdapter) AddTask(ctx context.Context, draft domain.Draft) (*domain.Task, bool, error) {
	req := CreateTaskRequest{Draft: draft}
	var resp CreateTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, false, fmt.Errorf("create-task service call failed: %w", err)
	}
	return resp.Task, resp.Created, nil
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID string) (*domain.Task, bool, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, false, fmt.Errorf("get-task service call failed: %w", err)
	}
	return resp.Task, resp.Found, nil
}

// UpdateTask merges a patch into a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, taskID string, patch domain.Patch) (*domain.Task, bool, error) {
	req := UpdateTaskRequest{TaskID: taskID, Patch: patch}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, false, fmt.Errorf("update-task service call failed: %w", err)
	}
	return resp.Task, resp.Found, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return false, fmt.Errorf("delete-task service call failed: %w", err)
	}
	return resp.Deleted, nil
}

// ListTasks lists the board in display order via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context) ([]domain.Task, error) {
	req := ListTasksRequest{}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-tasks",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return resp.Tasks, nil
}

// Palette returns the selectable colors via the get-palette service.
func (a *taskAdapter) Palette(ctx context.Context) ([]domain.Color, error) {
	req := PaletteRequest{}
	var resp PaletteResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-palette",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-palette service call failed: %w", err)
	}
	return resp.Colors, nil
}
