package web

import (
	"context"
	"fmt"
	"time"

	"github.com/example/task-board/modules/activity"
	"github.com/example/task-board/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
)

// WebModule is the driving adapter: it serves the board UI and the REST API
// and reaches the core domain only through TaskPort and ActivityPort.
type WebModule struct {
	app          *fiber.App
	addr         string
	taskPort     task.TaskPort
	activityPort activity.ActivityPort
	logger       types.Logger
}

// Compile-time interface checks.
var _ mono.Module = (*WebModule)(nil)
var _ mono.DependentModule = (*WebModule)(nil)
var _ mono.HealthCheckableModule = (*WebModule)(nil)

// NewModule creates a new WebModule listening on addr.
func NewModule(addr string, logger types.Logger) *WebModule {
	return &WebModule{
		addr:   addr,
		logger: logger,
	}
}

// Name returns the module name.
func (m *WebModule) Name() string {
	return "web"
}

// Dependencies returns the list of module dependencies.
func (m *WebModule) Dependencies() []string {
	return []string{"task", "activity"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *WebModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.taskPort = task.NewTaskAdapter(container)
	case "activity":
		m.activityPort = activity.NewActivityAdapter(container)
	}
}

// Start builds the Fiber app and starts listening.
// Returns an error if required dependencies are not set.
func (m *WebModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	if m.activityPort == nil {
		return fmt.Errorf("activityPort dependency not set")
	}

	m.app = newApp(NewHandlers(m.taskPort, m.activityPort, m.logger))

	// Start server in goroutine with startup error detection
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			errCh <- err
		}
	}()

	// Wait briefly to catch immediate startup errors (port in use, permission denied)
	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	m.logger.Info("HTTP server started", "addr", m.addr)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (m *WebModule) Stop(ctx context.Context) error {
	if m.app != nil {
		if err := m.app.ShutdownWithContext(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

// Health returns the health status of the module.
func (m *WebModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}
