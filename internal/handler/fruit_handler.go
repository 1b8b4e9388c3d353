package handler

import (
	"errors"
	"strconv"

	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FruitHandler struct {
	service service.InventoryService
}

func NewFruitHandler(s service.InventoryService) *FruitHandler {
	return &FruitHandler{service: s}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func (h *FruitHandler) GetFruits(c *fiber.Ctx) error {
	fruits, err := h.service.GetAllFruits()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fruits)
}

func (h *FruitHandler) CreateFruit(c *fiber.Ctx) error {
	var req model.FruitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateFruit(&req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Fruit added successfully"})
}

func (h *FruitHandler) UpdateFruit(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fruit ID"})
	}

	var req model.FruitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateFruit(id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrFruitNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Fruit updated successfully"})
}
