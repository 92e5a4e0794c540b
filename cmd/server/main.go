package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/vulnscan-ai/gui-server/internal/api"
	"github.com/vulnscan-ai/gui-server/internal/mock"
)

const (
	DefaultPort = 8080
	DocRoot     = "./gui"
)

func main() {
	port := DefaultPort
	if len(os.Args) > 1 {
		p, err := strconv.Atoi(os.Args[1])
		if err != nil || p < 1 || p > 65535 {
			log.Fatalf("Invalid port %q", os.Args[1])
		}
		port = p
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ErrorHandler: api.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// Setup routes
	api.SetupRoutes(app, mock.New(), DocRoot)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	// Start server
	log.Printf("Starting AI vulnerability scanner GUI server on port %d", port)
	log.Printf("GUI available at: http://localhost:%d", port)
	log.Printf("API endpoints available at: http://localhost:%d/api/v1/", port)
	log.Println("Press Ctrl+C to stop the server")

	if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped.")
}
