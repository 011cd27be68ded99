package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/task-board/modules/activity"
	"github.com/example/task-board/modules/task"
	"github.com/example/task-board/modules/web"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("PORT", 3000)
	natsPort := getEnvInt("NATS_PORT", 4222)
	activityLogSize := getEnvInt("ACTIVITY_LOG_SIZE", activity.DefaultMaxEntries)

	log.Println("=== Task Board ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("NATS Port: %d", natsPort)
	log.Printf("Activity Log Size: %d", activityLogSize)
	log.Printf("Time Zone: %s", time.Local)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	// The web module is the driving adapter and depends on task and activity.
	app.Register(activity.NewModule(activityLogSize, app.Logger()))
	app.Register(task.NewModule(app.Logger()))
	app.Register(web.NewModule(fmt.Sprintf(":%d", httpPort), app.Logger()))

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(httpPort int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Printf("Board available at http://localhost:%d", httpPort)
	log.Println("")
	log.Println("Board Endpoints:")
	log.Println("  GET    /                          - Task board (?new=1, ?edit=<id>)")
	log.Println("  POST   /tasks                     - Creation form actions")
	log.Println("  POST   /tasks/:id                 - Edit form actions")
	log.Println("  POST   /tasks/:id/toggle          - Toggle completion")
	log.Println("  POST   /tasks/:id/delete          - Delete a task")
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("  GET    /api/v1/palette            - Task colors")
	log.Println("  POST   /api/v1/tasks              - Create a task")
	log.Println("  GET    /api/v1/tasks              - List all tasks")
	log.Println("  GET    /api/v1/tasks/:id          - Get a task by ID")
	log.Println("  PATCH  /api/v1/tasks/:id          - Update a task")
	log.Println("  DELETE /api/v1/tasks/:id          - Delete a task")
	log.Println("  POST   /api/v1/tasks/:id/toggle   - Toggle completion")
	log.Println("  GET    /api/v1/activity           - Recent activity (?limit=N)")
	log.Println("  GET    /health                    - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := getEnv(key, ""); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
