package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/task-board/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// ActivityModule records task events in a bounded feed.
// It subscribes to domain events using the EventConsumerModule interface.
type ActivityModule struct {
	log    *Log
	logger types.Logger
}

var _ mono.Module = (*ActivityModule)(nil)
var _ mono.EventConsumerModule = (*ActivityModule)(nil)
var _ mono.ServiceProviderModule = (*ActivityModule)(nil)

// NewModule creates an activity module retaining at most maxEntries entries.
func NewModule(maxEntries int, logger types.Logger) *ActivityModule {
	return &ActivityModule{
		log:    NewLog(maxEntries),
		logger: logger,
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"TaskCreated.v1", "TaskUpdated.v1", "TaskDeleted.v1"})
	return nil
}

func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-activity", json.Unmarshal, json.Marshal, m.listActivity,
	); err != nil {
		return fmt.Errorf("failed to register list-activity service: %w", err)
	}
	m.logger.Info("Registered services", "services", []string{"list-activity"})
	return nil
}

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.log.Record(Entry{
		TaskID:    event.TaskID,
		Kind:      KindCreated,
		Message:   fmt.Sprintf("Task '%s' added", event.Title),
		Timestamp: event.CreatedAt,
	})
	m.logger.Debug("Recorded task creation", "taskID", event.TaskID)
	return nil
}

func (m *ActivityModule) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	entry := Entry{
		TaskID:    event.TaskID,
		Kind:      KindUpdated,
		Message:   fmt.Sprintf("Task '%s' updated", event.Title),
		Timestamp: event.UpdatedAt,
	}
	// A patch touching only completion is a toggle.
	if len(event.Fields) == 1 && event.Fields[0] == "completed" {
		if event.Completed {
			entry.Kind = KindCompleted
			entry.Message = fmt.Sprintf("Task '%s' completed", event.Title)
		} else {
			entry.Kind = KindReopened
			entry.Message = fmt.Sprintf("Task '%s' reopened", event.Title)
		}
	}
	m.log.Record(entry)
	m.logger.Debug("Recorded task update", "taskID", event.TaskID, "kind", entry.Kind)
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.log.Record(Entry{
		TaskID:    event.TaskID,
		Kind:      KindDeleted,
		Message:   fmt.Sprintf("Task '%s' deleted", event.Title),
		Timestamp: event.DeletedAt,
	})
	m.logger.Debug("Recorded task deletion", "taskID", event.TaskID)
	return nil
}

// listActivity handles the list-activity service request.
func (m *ActivityModule) listActivity(_ context.Context, req ListActivityRequest, _ *mono.Msg) (ListActivityResponse, error) {
	entries := m.log.Recent(clampLimit(req.Limit))
	return ListActivityResponse{
		Entries: entries,
		Total:   m.log.Len(),
	}, nil
}

func (m *ActivityModule) Start(_ context.Context) error {
	m.logger.Info("Activity module started - listening for task events", "capacity", m.log.maxEntries)
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped")
	return nil
}
