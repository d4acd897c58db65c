package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landinggenius/backend/internal/draft"
	"github.com/landinggenius/backend/internal/generator"
	"github.com/landinggenius/backend/internal/middleware"
)

type apiResp struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Redirect string              `json:"redirect"`
	Errors   map[string][]string `json:"errors"`
	Data     json.RawMessage     `json:"data"`
}

func newWizardApp(drafts draft.Store) *fiber.App {
	app := fiber.New()
	app.Use(middleware.WizardSession())

	h := NewWizardHandler(drafts, &generator.Generator{})
	api := app.Group("/api/wizard")
	api.Post("/mulai", h.SaveProduct)
	api.Get("/mulai", h.GetProduct)
	api.Get("/masalah", h.GetProblems)
	api.Post("/masalah", h.SelectProblem)
	api.Get("/pattern", h.GetPattern)
	api.Get("/preview", h.GetPreview)
	api.Post("/selesai", h.Complete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, sid, body string) (*http.Response, apiResp) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "lg_session", Value: sid})

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out apiResp
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

func TestWizardStepWithoutProductRedirects(t *testing.T) {
	app := newWizardApp(draft.NewMemoryStore())
	sid := uuid.NewString()

	for _, target := range []string{"/api/wizard/masalah", "/api/wizard/pattern", "/api/wizard/preview"} {
		resp, out := doJSON(t, app, "GET", target, sid, "")
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode, target)
		assert.False(t, out.Success)
		assert.Equal(t, "/mulai", out.Redirect)
	}

	resp, out := doJSON(t, app, "POST", "/api/wizard/selesai", sid, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "/mulai", out.Redirect)
}

func TestSaveProductValidation(t *testing.T) {
	app := newWizardApp(draft.NewMemoryStore())
	sid := uuid.NewString()

	resp, out := doJSON(t, app, "POST", "/api/wizard/mulai", sid,
		`{"productName":"Ab","targetMarket":"pendek","benefits":""}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Contains(t, out.Errors["productName"], "Nama produk minimal 3 karakter")
	assert.Contains(t, out.Errors["targetMarket"], "Deskripsikan target market lebih detail (minimal 10 karakter)")
	assert.Contains(t, out.Errors["benefits"], "Benefit produk wajib diisi")
}

func TestWizardFullFunnel(t *testing.T) {
	drafts := draft.NewMemoryStore()
	app := newWizardApp(drafts)
	sid := uuid.NewString()

	// step 1: data produk
	resp, out := doJSON(t, app, "POST", "/api/wizard/mulai", sid,
		`{"productName":"Nasi Gudeg Bu Sari","targetMarket":"Pekerja kantoran Jakarta yang rindu masakan rumahan","benefits":"Rasa autentik Jogja dengan bumbu asli"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, out.Success)

	// step 2: daftar masalah, keyword makanan memicu override
	resp, out = doJSON(t, app, "GET", "/api/wizard/masalah", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, out.Success)

	var problemsData struct {
		Problems []generator.Problem `json:"problems"`
		Selected *generator.Problem  `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &problemsData))
	require.Len(t, problemsData.Problems, 5)
	assert.Contains(t, problemsData.Problems[0].Title, "Porsi Kecil")
	assert.Nil(t, problemsData.Selected)

	// pilih masalah pertama
	resp, out = doJSON(t, app, "POST", "/api/wizard/masalah", sid, `{"problemId":1}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, out.Success)

	// step 3: pattern interrupt
	resp, out = doJSON(t, app, "GET", "/api/wizard/pattern", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, out.Success)

	var pattern generator.PatternInterrupt
	require.NoError(t, json.Unmarshal(out.Data, &pattern))
	assert.Contains(t, pattern.MainMessage, problemsData.Problems[0].Title)
	assert.Len(t, pattern.OldWayProblems, 4)

	// step 4: preview lengkap
	resp, out = doJSON(t, app, "GET", "/api/wizard/preview", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, out.Success)

	var bundle generator.PreviewBundle
	require.NoError(t, json.Unmarshal(out.Data, &bundle))
	assert.Len(t, bundle.MetaAds, 10)
	assert.Len(t, bundle.GoogleAds, 10)
	assert.Contains(t, bundle.HTMLCode, "Nasi Gudeg Bu Sari")
	assert.Contains(t, bundle.LandingPage.Headline, "Nasi Gudeg Bu Sari")

	// selesai
	resp, out = doJSON(t, app, "POST", "/api/wizard/selesai", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
}

func TestSelectProblemUnknownID(t *testing.T) {
	app := newWizardApp(draft.NewMemoryStore())
	sid := uuid.NewString()

	_, _ = doJSON(t, app, "POST", "/api/wizard/mulai", sid,
		`{"productName":"Jasa Desain Logo","targetMarket":"UMKM yang baru mulai membangun brand","benefits":"Desain cepat, revisi tanpa batas"}`)
	_, _ = doJSON(t, app, "GET", "/api/wizard/masalah", sid, "")

	resp, out := doJSON(t, app, "POST", "/api/wizard/masalah", sid, `{"problemId":42}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Equal(t, "Silakan pilih salah satu masalah terlebih dahulu", out.Message)
}

func TestSelectProblemInvalidatesDownstreamCaches(t *testing.T) {
	drafts := draft.NewMemoryStore()
	app := newWizardApp(drafts)
	sid := uuid.NewString()

	_, _ = doJSON(t, app, "POST", "/api/wizard/mulai", sid,
		`{"productName":"Jasa Desain Logo","targetMarket":"UMKM yang baru mulai membangun brand","benefits":"Desain cepat, revisi tanpa batas"}`)
	_, _ = doJSON(t, app, "GET", "/api/wizard/masalah", sid, "")
	_, _ = doJSON(t, app, "POST", "/api/wizard/masalah", sid, `{"problemId":1}`)
	_, _ = doJSON(t, app, "GET", "/api/wizard/pattern", sid, "")
	_, _ = doJSON(t, app, "GET", "/api/wizard/preview", sid, "")

	// ganti pilihan: cache pattern dan preview harus hangus
	_, out := doJSON(t, app, "POST", "/api/wizard/masalah", sid, `{"problemId":2}`)
	require.True(t, out.Success)

	var pattern generator.PatternInterrupt
	err := drafts.Load(context.Background(), sid, draft.KeyPatternInterrupt, &pattern)
	assert.ErrorIs(t, err, draft.ErrMissingKey)

	var bundle generator.PreviewBundle
	err = drafts.Load(context.Background(), sid, draft.KeyPreviewResults, &bundle)
	assert.ErrorIs(t, err, draft.ErrMissingKey)

	// pattern berikutnya mengacu ke masalah baru
	_, out = doJSON(t, app, "GET", "/api/wizard/pattern", sid, "")
	require.True(t, out.Success)
	require.NoError(t, json.Unmarshal(out.Data, &pattern))
	assert.Contains(t, pattern.MainMessage, "Kualitas Tidak Konsisten dan Mengecewakan")
}

func TestGetProductPrefill(t *testing.T) {
	app := newWizardApp(draft.NewMemoryStore())
	sid := uuid.NewString()

	// tanpa data tersimpan: success dengan data null
	resp, out := doJSON(t, app, "GET", "/api/wizard/mulai", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, "null", strings.TrimSpace(string(out.Data)))

	_, _ = doJSON(t, app, "POST", "/api/wizard/mulai", sid,
		`{"productName":"Jasa Desain Logo","targetMarket":"UMKM yang baru mulai membangun brand","benefits":"Desain cepat, revisi tanpa batas"}`)

	_, out = doJSON(t, app, "GET", "/api/wizard/mulai", sid, "")
	var input generator.ProductInput
	require.NoError(t, json.Unmarshal(out.Data, &input))
	assert.Equal(t, "Jasa Desain Logo", input.ProductName)
}
