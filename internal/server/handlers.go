package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	analyzer *Analyzer
	logger   *log.Logger
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handlers) moves(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	res, err := h.analyzer.Moves(req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *handlers) evaluate(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	res, err := h.analyzer.Evaluate(req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *handlers) search(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	res, err := h.analyzer.Search(c.UserContext(), req, nil)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
