package handlers

import (
	"errors"

	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReferenceHandler struct {
	reference *services.ReferenceService
}

func NewReferenceHandler(reference *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference}
}

func (h *ReferenceHandler) ListProvinces(c *fiber.Ctx) error {
	provinces, err := h.reference.ListProvinces()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list provinces",
		})
	}
	return c.JSON(provinces)
}

func (h *ReferenceHandler) ListCities(c *fiber.Ctx) error {
	provinceID, err := c.ParamsInt("id_provinsi")
	if err != nil || provinceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid province ID",
		})
	}

	cities, err := h.reference.ListCities(uint(provinceID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list cities",
		})
	}
	return c.JSON(cities)
}

func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.reference.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list categories",
		})
	}
	return c.JSON(categories)
}

func (h *ReferenceHandler) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category ID",
		})
	}

	category, err := h.reference.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Kategori not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to get category",
		})
	}
	return c.JSON(category)
}
