// Package server exposes move generation, evaluation and search over HTTP
// and a websocket that streams search progress.
package server

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/MSwiderski999/brainrotAI/board"
	"github.com/MSwiderski999/brainrotAI/engine"
)

type Config struct {
	MaxDepth int
	Timeout  time.Duration
	// Origins is a comma separated CORS allow list, "*" for any.
	Origins   string
	LogOutput io.Writer
	Logger    *log.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Origins == "" {
		cfg.Origins = "*"
	}
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}
}

// New builds the fiber app with all routes registered.
func New(cfg Config) *fiber.App {
	cfg.setDefaults()
	h := &handlers{analyzer: NewAnalyzer(cfg.MaxDepth, cfg.Timeout, cfg.Logger), logger: cfg.Logger}

	app := fiber.New(fiber.Config{
		AppName:      "brainrotAI",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestID} ${status} ${method} ${path} ${latency}\n",
		Output: cfg.LogOutput,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	api := app.Group("/api")
	api.Get("/health", h.health)
	api.Post("/moves", h.moves)
	api.Post("/evaluate", h.evaluate)
	api.Post("/search", h.search)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	wsCfg := websocket.Config{}
	if cfg.Origins != "*" {
		wsCfg.Origins = strings.Split(strings.ReplaceAll(cfg.Origins, " ", ""), ",")
	}
	app.Get("/ws/search", websocket.New(func(c *websocket.Conn) {
		h.serveSearch(c)
	}, wsCfg))

	return app
}

func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("requestID", id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrInvalidFEN), errors.Is(err, ErrDepth):
		return fiber.StatusBadRequest
	case errors.Is(err, engine.ErrGameOver):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
