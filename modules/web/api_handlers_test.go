package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	domain "github.com/example/task-board/domain/task"
	"github.com/example/task-board/modules/activity"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	app, _, _ := newTestApp()

	resp, body := sendJSON(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode[HealthResponse](t, body).Status)
}

func TestGetPalette(t *testing.T) {
	app, _, _ := newTestApp()

	_, body := sendJSON(t, app, http.MethodGet, "/api/v1/palette", "")
	got := decode[PaletteResponse](t, body)
	assert.Equal(t, []string{"pink", "purple", "blue", "green", "yellow", "orange"}, got.Colors)
	assert.Equal(t, "pink", got.Default)
}

func TestCreateTaskAPI(t *testing.T) {
	app, tasks, _ := newTestApp()

	resp, body := sendJSON(t, app, http.MethodPost, "/api/v1/tasks",
		`{"title":"Buy milk","tags":["home","home"," errand "],"color":"green","reminder":"2024-03-05T14:30:00Z"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)

	got := decode[TaskResponse](t, body)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, []string{"home", "errand"}, got.Tags)
	assert.Equal(t, "green", got.Color)
	require.NotNil(t, got.Reminder)
	assert.Equal(t, 1, tasks.store.Len())
}

func TestCreateTaskAPI_Validation(t *testing.T) {
	app, tasks, _ := newTestApp()

	resp, body := sendJSON(t, app, http.MethodPost, "/api/v1/tasks", `{"title":"   "}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", decode[ErrorResponse](t, body).Error)

	resp, body = sendJSON(t, app, http.MethodPost, "/api/v1/tasks", `{"title":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_request", decode[ErrorResponse](t, body).Error)

	assert.Equal(t, 0, tasks.store.Len())
}

func TestListTasksAPI(t *testing.T) {
	app, tasks, _ := newTestApp()

	_, body := sendJSON(t, app, http.MethodGet, "/api/v1/tasks", "")
	empty := decode[ListTasksResponse](t, body)
	assert.Empty(t, empty.Tasks)
	assert.Equal(t, 0, empty.Total)

	_, _ = tasks.store.Add(domain.Draft{Title: "first"})
	_, _ = tasks.store.Add(domain.Draft{Title: "second"})

	_, body = sendJSON(t, app, http.MethodGet, "/api/v1/tasks", "")
	got := decode[ListTasksResponse](t, body)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "second", got.Tasks[0].Title)
	assert.Equal(t, 2, got.Total)
}

func TestGetTaskAPI(t *testing.T) {
	app, tasks, _ := newTestApp()
	created, _ := tasks.store.Add(domain.Draft{Title: "a"})

	resp, body := sendJSON(t, app, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decode[TaskResponse](t, body).ID)

	resp, body = sendJSON(t, app, http.MethodGet, "/api/v1/tasks/missing", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[ErrorResponse](t, body).Error)
}

func TestUpdateTaskAPI(t *testing.T) {
	app, tasks, _ := newTestApp()
	created, _ := tasks.store.Add(domain.Draft{Title: "Buy milk", Tags: []string{"home"}, Color: domain.ColorBlue})

	resp, body := sendJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+created.ID, `{"title":"Buy oat milk","color":"black"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
	got := decode[TaskResponse](t, body)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Equal(t, "blue", got.Color, "unknown color is ignored")
	assert.Equal(t, []string{"home"}, got.Tags)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())

	resp, _ = sendJSON(t, app, http.MethodPatch, "/api/v1/tasks/"+created.ID, `{"title":"  "}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = sendJSON(t, app, http.MethodPatch, "/api/v1/tasks/missing", `{"completed":true}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteTaskAPI(t *testing.T) {
	app, tasks, _ := newTestApp()
	created, _ := tasks.store.Add(domain.Draft{Title: "a"})

	resp, _ := sendJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, tasks.store.Len())

	resp, _ = sendJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestToggleTaskAPI(t *testing.T) {
	app, tasks, _ := newTestApp()
	created, _ := tasks.store.Add(domain.Draft{Title: "a"})

	_, body := sendJSON(t, app, http.MethodPost, "/api/v1/tasks/"+created.ID+"/toggle", "")
	assert.True(t, decode[TaskResponse](t, body).Completed)

	_, body = sendJSON(t, app, http.MethodPost, "/api/v1/tasks/"+created.ID+"/toggle", "")
	assert.False(t, decode[TaskResponse](t, body).Completed)

	got, _ := tasks.store.Get(created.ID)
	assert.Equal(t, created, got, "toggling twice restores the task")

	resp, _ := sendJSON(t, app, http.MethodPost, "/api/v1/tasks/missing/toggle", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListActivityAPI(t *testing.T) {
	app, _, feed := newTestApp()
	feed.entries = []activity.Entry{{TaskID: "t-1", Kind: activity.KindCreated}}

	resp, body := sendJSON(t, app, http.MethodGet, "/api/v1/activity?limit=5", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, feed.lastLimit)

	got := decode[activity.ListActivityResponse](t, body)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, activity.KindCreated, got.Entries[0].Kind)

	_, _ = sendJSON(t, app, http.MethodGet, "/api/v1/activity", "")
	assert.Equal(t, 0, feed.lastLimit, "the activity module applies the default")
}

func TestAPI_PortFailure(t *testing.T) {
	app, tasks, _ := newTestApp()
	tasks.err = errors.New("bus unavailable")

	resp, body := sendJSON(t, app, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "server_error", decode[ErrorResponse](t, body).Error)
}
