package task

import (
	"context"
	"time"

	domain "github.com/example/task-board/domain/task"
	"github.com/example/task-board/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	newTask, ok := m.store.Add(req.Draft)
	if !ok {
		m.logger.Debug("Ignored task draft without title")
		return CreateTaskResponse{Created: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    newTask.ID,
			Title:     newTask.Title,
			Color:     string(newTask.Color),
			Tags:      newTask.Tags,
			CreatedAt: newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			m.logger.Warn("Failed to publish TaskCreated event", "taskID", newTask.ID, "error", err)
		}
	}

	m.logger.Info("Task created", "taskID", newTask.ID, "title", newTask.Title)
	return CreateTaskResponse{Task: &newTask, Created: true}, nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, ok := m.store.Get(req.TaskID)
	if !ok {
		return TaskResponse{Found: false}, nil
	}
	return TaskResponse{Task: &t, Found: true}, nil
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	updated, ok := m.store.Update(req.TaskID, req.Patch)
	if !ok {
		m.logger.Debug("Ignored update for unknown task", "taskID", req.TaskID)
		return TaskResponse{Found: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    updated.ID,
			Title:     updated.Title,
			Completed: updated.Completed,
			Fields:    req.Patch.Fields(),
			UpdatedAt: time.Now(),
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			m.logger.Warn("Failed to publish TaskUpdated event", "taskID", updated.ID, "error", err)
		}
	}

	return TaskResponse{Task: &updated, Found: true}, nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	removed, ok := m.store.Delete(req.TaskID)
	if !ok {
		m.logger.Debug("Ignored delete for unknown task", "taskID", req.TaskID)
		return DeleteTaskResponse{Deleted: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    removed.ID,
			Title:     removed.Title,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			m.logger.Warn("Failed to publish TaskDeleted event", "taskID", removed.ID, "error", err)
		}
	}

	m.logger.Info("Task deleted", "taskID", removed.ID)
	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks := m.store.List()
	return ListTasksResponse{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}

// getPalette handles the get-palette service request.
func (m *TaskModule) getPalette(_ context.Context, _ PaletteRequest, _ *mono.Msg) (PaletteResponse, error) {
	return PaletteResponse{
		Colors:  domain.Palette(),
		Default: domain.DefaultColor,
	}, nil
}
