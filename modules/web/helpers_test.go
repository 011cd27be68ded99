package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	domain "github.com/example/task-board/domain/task"
	"github.com/example/task-board/modules/activity"
	"github.com/example/task-board/modules/task"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
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

// fakeTaskPort serves TaskPort from an in-process store, skipping the bus.
type fakeTaskPort struct {
	store   *task.TaskStore
	err     error
	patches []domain.Patch
}

func newFakeTaskPort() *fakeTaskPort {
	return &fakeTaskPort{store: task.NewTaskStore()}
}

func (f *fakeTaskPort) AddTask(_ context.Context, draft domain.Draft) (*domain.Task, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	t, ok := f.store.Add(draft)
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (f *fakeTaskPort) GetTask(_ context.Context, id string) (*domain.Task, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	t, ok := f.store.Get(id)
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (f *fakeTaskPort) UpdateTask(_ context.Context, id string, patch domain.Patch) (*domain.Task, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	f.patches = append(f.patches, patch)
	t, ok := f.store.Update(id, patch)
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (f *fakeTaskPort) DeleteTask(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.store.Delete(id)
	return ok, nil
}

func (f *fakeTaskPort) ListTasks(_ context.Context) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.List(), nil
}

func (f *fakeTaskPort) Palette(_ context.Context) ([]domain.Color, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.Palette(), nil
}

type fakeActivityPort struct {
	entries   []activity.Entry
	lastLimit int
}

func (f *fakeActivityPort) ListActivity(_ context.Context, limit int) (*activity.ListActivityResponse, error) {
	f.lastLimit = limit
	return &activity.ListActivityResponse{Entries: f.entries, Total: len(f.entries)}, nil
}

func newTestApp() (*fiber.App, *fakeTaskPort, *fakeActivityPort) {
	tasks := newFakeTaskPort()
	feed := &fakeActivityPort{}
	return newApp(NewHandlers(tasks, feed, &mockLogger{})), tasks, feed
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(body)
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, req)
}

func sendJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return doRequest(t, app, req)
}
