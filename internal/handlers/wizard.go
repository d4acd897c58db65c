package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/landinggenius/backend/internal/draft"
	"github.com/landinggenius/backend/internal/generator"
	"github.com/landinggenius/backend/internal/middleware"
)

// WizardHandler sequences the guided funnel:
// ProductForm -> ProblemSelection -> PatternInterrupt -> PreviewResults.
// Each step is gated on the draft keys the steps before it wrote; a missing
// key answers with a redirect to /mulai. Generated artifacts are cached in
// the draft store, so revisiting a step never re-invokes generation unless
// the client asks for a retry.
type WizardHandler struct {
	Drafts draft.Store
	Gen    *generator.Generator
}

func NewWizardHandler(drafts draft.Store, gen *generator.Generator) *WizardHandler {
	return &WizardHandler{Drafts: drafts, Gen: gen}
}

type ProductInputReq struct {
	ProductName  string `json:"productName"`
	TargetMarket string `json:"targetMarket"`
	Benefits     string `json:"benefits"`
}

func validateProductInput(req ProductInputReq) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.ProductName) == "" {
		errs.Add("productName", "Nama produk wajib diisi")
	} else if len(req.ProductName) < 3 {
		errs.Add("productName", "Nama produk minimal 3 karakter")
	}

	if strings.TrimSpace(req.TargetMarket) == "" {
		errs.Add("targetMarket", "Target market wajib diisi")
	} else if len(req.TargetMarket) < 10 {
		errs.Add("targetMarket", "Deskripsikan target market lebih detail (minimal 10 karakter)")
	}

	if strings.TrimSpace(req.Benefits) == "" {
		errs.Add("benefits", "Benefit produk wajib diisi")
	} else if len(req.Benefits) < 10 {
		errs.Add("benefits", "Deskripsikan benefit lebih detail (minimal 10 karakter)")
	}

	return errs
}

// SaveProduct handles POST /api/wizard/mulai.
func (h *WizardHandler) SaveProduct(c *fiber.Ctx) error {
	var req ProductInputReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body request tidak valid",
		})
	}

	if errs := validateProductInput(req); len(errs) > 0 {
		return validationFail(c, errs)
	}

	input := generator.ProductInput{
		ProductName:  req.ProductName,
		TargetMarket: req.TargetMarket,
		Benefits:     req.Benefits,
	}

	sid := middleware.SessionID(c)
	if err := h.Drafts.Save(c.Context(), sid, draft.KeyProductData, input); err != nil {
		zap.L().Error("save product draft", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan data produk",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Data produk berhasil disimpan!",
		"data":    input,
	})
}

// GetProduct handles GET /api/wizard/mulai and prefills the form when the
// user navigates back.
func (h *WizardHandler) GetProduct(c *fiber.Ctx) error {
	var input generator.ProductInput
	sid := middleware.SessionID(c)
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		if errors.Is(err, draft.ErrMissingKey) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat data produk",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": input})
}

// GetProblems handles GET /api/wizard/masalah: generates (or loads the
// cached) candidate problem list. ?retry=1 forces regeneration after a
// failure; upstream product data is never touched.
func (h *WizardHandler) GetProblems(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)

	var input generator.ProductInput
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		if errors.Is(err, draft.ErrMissingKey) {
			return missingUpstream(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat data produk",
		})
	}

	retry := c.QueryBool("retry")

	var problems []generator.Problem
	if !retry {
		if err := h.Drafts.Load(c.Context(), sid, draft.KeyProblems, &problems); err == nil {
			return h.problemsResponse(c, sid, problems)
		}
	}

	problems, err := h.Gen.Problems(c.Context(), input)
	if err != nil {
		zap.L().Warn("generate problems", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":   false,
			"message":   "Gagal menganalisa masalah. Silakan coba lagi.",
			"retryable": true,
		})
	}

	if err := h.Drafts.Save(c.Context(), sid, draft.KeyProblems, problems); err != nil {
		zap.L().Error("cache problems", zap.Error(err))
	}

	return h.problemsResponse(c, sid, problems)
}

func (h *WizardHandler) problemsResponse(c *fiber.Ctx, sid string, problems []generator.Problem) error {
	var selected *generator.Problem
	var cached generator.Problem
	if err := h.Drafts.Load(c.Context(), sid, draft.KeySelectedProblem, &cached); err == nil {
		selected = &cached
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"problems": problems,
			"selected": selected,
		},
	})
}

type SelectProblemReq struct {
	ProblemID int `json:"problemId"`
}

// SelectProblem handles POST /api/wizard/masalah: the user must pick exactly
// one of the generated candidates.
func (h *WizardHandler) SelectProblem(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)

	var input generator.ProductInput
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		if errors.Is(err, draft.ErrMissingKey) {
			return missingUpstream(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat data produk",
		})
	}

	var req SelectProblemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body request tidak valid",
		})
	}

	var problems []generator.Problem
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProblems, &problems); err != nil {
		if errors.Is(err, draft.ErrMissingKey) {
			return missingUpstream(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memuat daftar masalah",
		})
	}

	var chosen *generator.Problem
	for i := range problems {
		if problems[i].ID == req.ProblemID {
			chosen = &problems[i]
			break
		}
	}
	if chosen == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Silakan pilih salah satu masalah terlebih dahulu",
		})
	}

	if err := h.Drafts.Save(c.Context(), sid, draft.KeySelectedProblem, chosen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan pilihan masalah",
		})
	}

	// Downstream artifacts derive from the selection; drop stale caches so
	// the next steps regenerate against the new problem.
	_ = h.Drafts.Delete(c.Context(), sid, draft.KeyPatternInterrupt)
	_ = h.Drafts.Delete(c.Context(), sid, draft.KeyPreviewResults)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Masalah berhasil dipilih",
		"data":    chosen,
	})
}

// GetPattern handles GET /api/wizard/pattern.
func (h *WizardHandler) GetPattern(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)

	var input generator.ProductInput
	var problem generator.Problem
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeySelectedProblem, &problem); err != nil {
		return missingUpstream(c)
	}

	retry := c.QueryBool("retry")

	var pattern generator.PatternInterrupt
	if !retry {
		if err := h.Drafts.Load(c.Context(), sid, draft.KeyPatternInterrupt, &pattern); err == nil {
			return c.JSON(fiber.Map{"success": true, "data": pattern})
		}
	}

	generated, err := h.Gen.PatternInterrupt(c.Context(), input, problem)
	if err != nil {
		zap.L().Warn("generate pattern interrupt", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":   false,
			"message":   "Gagal membuat pattern interrupt. Silakan coba lagi.",
			"retryable": true,
		})
	}

	if err := h.Drafts.Save(c.Context(), sid, draft.KeyPatternInterrupt, generated); err != nil {
		zap.L().Error("cache pattern interrupt", zap.Error(err))
	}

	return c.JSON(fiber.Map{"success": true, "data": generated})
}

// GetPreview handles GET /api/wizard/preview: landing page + 10 meta ads +
// 10 google ads + the rendered HTML document, cached as one bundle.
func (h *WizardHandler) GetPreview(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)

	var input generator.ProductInput
	var problem generator.Problem
	var pattern generator.PatternInterrupt
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyProductData, &input); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeySelectedProblem, &problem); err != nil {
		return missingUpstream(c)
	}
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyPatternInterrupt, &pattern); err != nil {
		return missingUpstream(c)
	}

	retry := c.QueryBool("retry")

	var bundle generator.PreviewBundle
	if !retry {
		if err := h.Drafts.Load(c.Context(), sid, draft.KeyPreviewResults, &bundle); err == nil {
			return c.JSON(fiber.Map{"success": true, "data": bundle})
		}
	}

	page, err := h.Gen.LandingPage(c.Context(), input, problem)
	if err != nil {
		zap.L().Warn("generate landing page", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":   false,
			"message":   "Gagal membuat landing page. Silakan coba lagi.",
			"retryable": true,
		})
	}

	ads, err := h.Gen.Ads(c.Context(), input, problem)
	if err != nil {
		zap.L().Warn("generate ads", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":   false,
			"message":   "Gagal membuat ide iklan. Silakan coba lagi.",
			"retryable": true,
		})
	}

	bundle = generator.PreviewBundle{
		LandingPage: *page,
		MetaAds:     ads.MetaAds,
		GoogleAds:   ads.GoogleAds,
		HTMLCode:    generator.RenderHTML(input, *page),
	}

	if err := h.Drafts.Save(c.Context(), sid, draft.KeyPreviewResults, bundle); err != nil {
		zap.L().Error("cache preview results", zap.Error(err))
	}

	return c.JSON(fiber.Map{"success": true, "data": bundle})
}

// Complete handles POST /api/wizard/selesai, marking the funnel done before
// the registration sub-flow takes over.
func (h *WizardHandler) Complete(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)

	var bundle generator.PreviewBundle
	if err := h.Drafts.Load(c.Context(), sid, draft.KeyPreviewResults, &bundle); err != nil {
		return missingUpstream(c)
	}

	if err := h.Drafts.Save(c.Context(), sid, draft.KeyWizardCompleted, true); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan status wizard",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Wizard selesai"})
}
