package web

import (
	"net/http"
	"os"

	"github.com/example/task-board/modules/activity"
	"github.com/example/task-board/modules/task"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Handlers contains the HTTP handlers for the board page and the JSON API.
type Handlers struct {
	tasks    task.TaskPort
	activity activity.ActivityPort
	logger   types.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(tasks task.TaskPort, activityPort activity.ActivityPort, moduleLogger types.Logger) *Handlers {
	return &Handlers{
		tasks:    tasks,
		activity: activityPort,
		logger:   moduleLogger,
	}
}

// newApp builds the Fiber application with middleware and every route.
func newApp(h *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Task Board",
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:8080"
	}
	app.Use("/api", cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(StaticFS()),
		PathPrefix: "static",
	}))

	registerRoutes(app, h)
	return app
}

func registerRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", h.HealthCheck)

	// Board page
	app.Get("/", h.Page)
	app.Post("/tasks", h.SubmitCreateForm)
	app.Post("/tasks/:id", h.SubmitEditForm)
	app.Post("/tasks/:id/toggle", h.ToggleTask)
	app.Post("/tasks/:id/delete", h.DeleteTask)

	// API v1 routes
	api := app.Group("/api/v1")
	api.Get("/palette", h.GetPalette)
	api.Get("/activity", h.ListActivity)

	tasks := api.Group("/tasks")
	tasks.Post("/", h.CreateTask)
	tasks.Get("/", h.ListTasks)
	tasks.Get("/:id", h.GetTask)
	tasks.Patch("/:id", h.UpdateTask)
	tasks.Delete("/:id", h.DeleteTaskAPI)
	tasks.Post("/:id/toggle", h.ToggleTaskAPI)
}

// errorHandler handles errors returned by page handlers.
func (h *Handlers) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		h.logger.Error("HTTP error", "code", code, "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
