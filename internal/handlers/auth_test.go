package handlers

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/repository"
	"github.com/landinggenius/backend/internal/services/gateway"
)

func testPackages() []models.Package {
	return []models.Package{
		{ID: "starter", Name: "Starter", Price: 49000, Tokens: 5},
		{ID: "pro", Name: "Pro", Price: 99000, Tokens: 15},
		{ID: "business", Name: "Business", Price: 199000, Tokens: 50},
	}
}

func newAuthApp() (*fiber.App, *AuthHandler) {
	h := &AuthHandler{
		Users:     repository.NewMemoryUserRepository(),
		Packages:  repository.NewMemoryPackageRepository(testPackages()),
		Payments:  repository.NewMemoryPaymentRepository(),
		Gateway:   gateway.New("test-key", "http://localhost:3000"),
		JWTSecret: "test-secret",
		Expires:   60,
	}

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/register/validate", h.ValidateStep)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", h.Logout)
	return app, h
}

const validRegisterBody = `{
	"name": "Budi Santoso",
	"wa_number": "081234567890",
	"email": "budi@example.com",
	"password": "rahasia123",
	"confirmPassword": "rahasia123",
	"packageId": "starter"
}`

func TestRegisterSuccessGrantsInitialTokens(t *testing.T) {
	app, h := newAuthApp()

	resp, out := doJSON(t, app, "POST", "/api/auth/register", "s1", validRegisterBody)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Contains(t, out.Message, "Registrasi berhasil")

	// cookie sesi login ikut terpasang
	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "lg_token" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "cookie lg_token tidak terpasang")

	u, err := h.Users.(*repository.MemoryUserRepository).GetByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.TokenBalance)
	assert.True(t, u.IsActive)

	// saldo awal tercatat sebagai kredit di ledger
	ledger := h.Users.(*repository.MemoryUserRepository).Ledger()
	require.Len(t, ledger, 1)
	assert.Equal(t, models.TokenTrxCredit, ledger[0].Type)
	assert.Equal(t, int64(5), ledger[0].Amount)
	assert.Contains(t, ledger[0].Description, "Starter")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, h := newAuthApp()

	_, out := doJSON(t, app, "POST", "/api/auth/register", "s1", validRegisterBody)
	require.True(t, out.Success)

	second := `{
		"name": "Budi Kedua",
		"wa_number": "089999999999",
		"email": "budi@example.com",
		"password": "rahasia123",
		"confirmPassword": "rahasia123",
		"packageId": "pro"
	}`
	resp, out := doJSON(t, app, "POST", "/api/auth/register", "s2", second)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Contains(t, out.Errors["email"], "Email sudah terdaftar")

	// user kedua tidak dibuat dan tidak ada kredit tambahan
	_, err := h.Users.GetByEmail(context.Background(), "budi2@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Len(t, h.Users.(*repository.MemoryUserRepository).Ledger(), 1)
}

func TestRegisterValidationCollectsAllSteps(t *testing.T) {
	app, _ := newAuthApp()

	resp, out := doJSON(t, app, "POST", "/api/auth/register", "s1", `{
		"name": "B",
		"wa_number": "123",
		"email": "bukan-email",
		"password": "abc",
		"confirmPassword": "beda",
		"packageId": ""
	}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Contains(t, out.Errors["name"], "Nama minimal 2 karakter")
	assert.Contains(t, out.Errors["wa_number"], "Format nomor WhatsApp tidak valid")
	assert.Contains(t, out.Errors["email"], "Format email tidak valid")
	assert.Contains(t, out.Errors["password"], "Password minimal 6 karakter")
	assert.Contains(t, out.Errors["confirmPassword"], "Password tidak cocok")
	assert.Contains(t, out.Errors["packageId"], "Silakan pilih paket terlebih dahulu")
}

func TestValidateStepPerStep(t *testing.T) {
	app, _ := newAuthApp()

	// step 1 valid meski field step lain kosong
	resp, out := doJSON(t, app, "POST", "/api/auth/register/validate", "s1",
		`{"step":1,"name":"Budi Santoso","wa_number":"+6281234567890"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)

	// step 3 menolak paket yang tidak ada
	_, out = doJSON(t, app, "POST", "/api/auth/register/validate", "s1",
		`{"step":3,"packageId":"enterprise"}`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Errors["packageId"], "Paket tidak ditemukan")

	// step 4 tanpa field selalu lolos
	_, out = doJSON(t, app, "POST", "/api/auth/register/validate", "s1", `{"step":4}`)
	assert.True(t, out.Success)

	// step di luar jangkauan ditolak
	resp, _ = doJSON(t, app, "POST", "/api/auth/register/validate", "s1", `{"step":7}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWANumberFormats(t *testing.T) {
	valid := []string{"081234567890", "+6281234567890", "6281234567890"}
	invalid := []string{"12345", "08123", "abcdefghijkl", "+1555123456789012345"}

	for _, wa := range valid {
		assert.Regexp(t, waRe, wa)
	}
	for _, wa := range invalid {
		assert.NotRegexp(t, waRe, wa, wa)
	}
}

func TestLoginFlow(t *testing.T) {
	app, _ := newAuthApp()
	_, out := doJSON(t, app, "POST", "/api/auth/register", "s1", validRegisterBody)
	require.True(t, out.Success)

	resp, out := doJSON(t, app, "POST", "/api/auth/login", "s1",
		`{"email":"BUDI@example.com","password":"rahasia123"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, "Login berhasil", out.Message)

	// password salah: pesan generik, bukan petunjuk field
	_, out = doJSON(t, app, "POST", "/api/auth/login", "s1",
		`{"email":"budi@example.com","password":"salah123"}`)
	assert.False(t, out.Success)
	assert.Equal(t, "Email atau password salah", out.Message)

	// email tidak terdaftar: pesan yang sama persis
	_, out = doJSON(t, app, "POST", "/api/auth/login", "s1",
		`{"email":"tidakada@example.com","password":"rahasia123"}`)
	assert.False(t, out.Success)
	assert.Equal(t, "Email atau password salah", out.Message)
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _ := newAuthApp()

	resp, out := doJSON(t, app, "POST", "/api/auth/logout", "s1", "")
	assert.True(t, out.Success)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "lg_token" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "cookie lg_token tidak dihapus")
}
