package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/landinggenius/backend/internal/repository"
)

type PublicHandler struct {
	Projects repository.ProjectRepository
}

func NewPublicHandler(projects repository.ProjectRepository) *PublicHandler {
	return &PublicHandler{Projects: projects}
}

const notFoundHTML = `<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Halaman Tidak Ditemukan</title></head>
<body style="font-family:system-ui;text-align:center;padding:80px 24px;color:#1e293b">
<h1>404</h1>
<p>Landing page tidak ditemukan atau belum dipublish.</p>
</body>
</html>`

// Show handles GET /p/:url: the read-only render of a published landing
// page. Reachable without login and without touching wizard state.
func (h *PublicHandler) Show(c *fiber.Ctx) error {
	project, err := h.Projects.GetByPublicURL(c.Context(), c.Params("url"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusNotFound).SendString(notFoundHTML)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan server",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(project.HTMLCode)
}
