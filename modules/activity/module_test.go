package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/example/task-board/events"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any) {}
func (m *mockLogger) Info(_ string, _ ...any)  {}
func (m *mockLogger) Warn(_ string, _ ...any)  {}
func (m *mockLogger) Error(_ string, _ ...any) {}
func (m *mockLogger) With(_ ...any) types.Logger {
	return m
}
func (m *mockLogger) WithModule(_ string) types.Logger {
	return m
}
func (m *mockLogger) WithError(_ error) types.Logger {
	return m
}

func TestModule_Name(t *testing.T) {
	assert.Equal(t, "activity", NewModule(10, &mockLogger{}).Name())
}

func TestModule_RecordsEvents(t *testing.T) {
	m := NewModule(10, &mockLogger{})
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, m.handleTaskCreated(ctx, events.TaskCreatedEvent{TaskID: "t-1", Title: "Buy milk", CreatedAt: now}, nil))
	require.NoError(t, m.handleTaskUpdated(ctx, events.TaskUpdatedEvent{TaskID: "t-1", Title: "Buy milk", Completed: true, Fields: []string{"completed"}, UpdatedAt: now}, nil))
	require.NoError(t, m.handleTaskUpdated(ctx, events.TaskUpdatedEvent{TaskID: "t-1", Title: "Buy milk", Completed: false, Fields: []string{"completed"}, UpdatedAt: now}, nil))
	require.NoError(t, m.handleTaskUpdated(ctx, events.TaskUpdatedEvent{TaskID: "t-1", Title: "Buy oat milk", Completed: false, Fields: []string{"title", "completed"}, UpdatedAt: now}, nil))
	require.NoError(t, m.handleTaskDeleted(ctx, events.TaskDeletedEvent{TaskID: "t-1", Title: "Buy oat milk", DeletedAt: now}, nil))

	resp, err := m.listActivity(ctx, ListActivityRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 5)
	assert.Equal(t, 5, resp.Total)

	kinds := make([]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []string{KindDeleted, KindUpdated, KindReopened, KindCompleted, KindCreated}, kinds)
	assert.Equal(t, "Task 'Buy oat milk' deleted", resp.Entries[0].Message)
}

func TestModule_ListActivityLimit(t *testing.T) {
	m := NewModule(500, &mockLogger{})
	ctx := context.Background()
	for i := 0; i < 300; i++ {
		_ = m.handleTaskCreated(ctx, events.TaskCreatedEvent{TaskID: fmt.Sprintf("t-%d", i)}, nil)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, defaultListLimit},
		{"negative", -3, defaultListLimit},
		{"explicit", 7, 7},
		{"capped", 1000, maxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := m.listActivity(ctx, ListActivityRequest{Limit: tt.limit}, nil)
			require.NoError(t, err)
			assert.Len(t, resp.Entries, tt.want)
			assert.Equal(t, 300, resp.Total)
			assert.Equal(t, "t-299", resp.Entries[0].TaskID)
		})
	}
}

func TestModule_StartStop(t *testing.T) {
	m := NewModule(0, &mockLogger{})
	ctx := context.Background()
	require.NoError(t, m.Start(ctx))
	require.NoError(t, m.Stop(ctx))
	assert.Equal(t, DefaultMaxEntries, m.log.maxEntries)
}
