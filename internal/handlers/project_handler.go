package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/landinggenius/backend/internal/draft"
	"github.com/landinggenius/backend/internal/generator"
	"github.com/landinggenius/backend/internal/middleware"
	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/repository"
)

type ProjectHandler struct {
	Projects repository.ProjectRepository
	Users    repository.UserRepository
	Drafts   draft.Store
}

func NewProjectHandler(projects repository.ProjectRepository, users repository.UserRepository, drafts draft.Store) *ProjectHandler {
	return &ProjectHandler{Projects: projects, Users: users, Drafts: drafts}
}

// Create handles POST /api/projects: converts the finished wizard draft of
// the current session into a persisted project. Costs 1 token; the debit
// happens before the record is persisted, and is refunded if persisting
// fails so the two calls stay all-or-nothing from the caller's view.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sid := middleware.SessionID(c)

	var input generator.ProductInput
	var problem generator.Problem
	var pattern generator.PatternInterrupt
	var bundle generator.PreviewBundle
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeySelectedProblem, &problem); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyPatternInterrupt, &pattern); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyPreviewResults, &bundle); err != nil {
		return missingUpstream(c)
	}

	projectID := uuid.New()
	if err := h.Users.SpendTokens(c.Context(), uid, 1, &projectID, "Pembuatan landing page "+input.ProductName); err != nil {
		if errors.Is(err, repository.ErrInsufficientTokens) {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak cukup. Silakan beli token tambahan.",
			})
		}
		zap.L().Error("spend token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan server",
		})
	}

	problemJSON, _ := json.Marshal(problem)
	patternJSON, _ := json.Marshal(pattern)

	project := models.Project{
		ID:               projectID,
		UserID:           uid,
		ProductName:      input.ProductName,
		TargetMarket:     input.TargetMarket,
		Benefits:         input.Benefits,
		SelectedProblem:  datatypes.JSON(problemJSON),
		PatternInterrupt: datatypes.JSON(patternJSON),
		HTMLCode:         bundle.HTMLCode,
		Status:           models.ProjectStatusDraft,
	}

	if err := h.Projects.Create(c.Context(), &project); err != nil {
		zap.L().Error("create project", zap.Error(err))
		// Kompensasi: kembalikan token yang sudah terpotong.
		if rerr := h.Users.AddTokens(c.Context(), uid, 1, &projectID, "Refund: gagal menyimpan project"); rerr != nil {
			zap.L().Error("refund token", zap.Error(rerr))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project berhasil dibuat",
		"data":    project,
	})
}

// ListMine handles GET /api/projects.
func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	projects, err := h.Projects.ListByOwner(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat project",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": projects})
}

// ownedProject loads a project and checks it belongs to the caller.
func (h *ProjectHandler) ownedProject(c *fiber.Ctx) (*models.Project, error) {
	uid, err := getUserUUID(c)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID project tidak valid",
		})
	}

	project, err := h.Projects.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Project tidak ditemukan",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan server",
		})
	}

	if project.UserID != uid {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Project ini bukan milik Anda",
		})
	}

	return project, nil
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.ownedProject(c)
	if project == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": project})
}

type UpdateProjectReq struct {
	ProductName  *string `json:"product_name"`
	TargetMarket *string `json:"target_market"`
	Benefits     *string `json:"benefits"`
	HTMLCode     *string `json:"html_code"`
}

// Update handles PUT /api/projects/:id: editor saves for content fields.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	project, err := h.ownedProject(c)
	if project == nil {
		return err
	}

	var req UpdateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body request tidak valid",
		})
	}

	if req.ProductName != nil {
		if len(*req.ProductName) < 3 {
			errs := FieldErrors{}
			errs.Add("product_name", "Nama produk minimal 3 karakter")
			return validationFail(c, errs)
		}
		project.ProductName = *req.ProductName
	}
	if req.TargetMarket != nil {
		project.TargetMarket = *req.TargetMarket
	}
	if req.Benefits != nil {
		project.Benefits = *req.Benefits
	}
	if req.HTMLCode != nil {
		project.HTMLCode = *req.HTMLCode
	}

	if err := h.Projects.Update(c.Context(), project); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan perubahan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Perubahan berhasil disimpan",
		"data":    project,
	})
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	project, err := h.ownedProject(c)
	if project == nil {
		return err
	}

	if err := h.Projects.Delete(c.Context(), project.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus project",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Project berhasil dihapus"})
}

// Publish handles POST /api/projects/:id/publish. Idempotent: the public URL
// is assigned once and re-publishing keeps it.
func (h *ProjectHandler) Publish(c *fiber.Ctx) error {
	project, err := h.ownedProject(c)
	if project == nil {
		return err
	}

	published, err := h.Projects.Publish(c.Context(), project.ID)
	if err != nil {
		zap.L().Error("publish project", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mempublish project",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Landing page berhasil dipublish!",
		"data": fiber.Map{
			"public_url": published.PublicURL,
			"status":     published.Status,
		},
	})
}
