package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/landinggenius/backend/internal/repository"
)

type PackageHandler struct {
	Packages repository.PackageRepository
}

func NewPackageHandler(packages repository.PackageRepository) *PackageHandler {
	return &PackageHandler{Packages: packages}
}

// List handles GET /api/packages.
func (h *PackageHandler) List(c *fiber.Ctx) error {
	packages, err := h.Packages.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat daftar paket",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": packages})
}
