package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landinggenius/backend/internal/utils"
)

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JWTFromCookie(secret), AttachJWTLocals())
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func TestJWTFromCookieMissing(t *testing.T) {
	app := newProtectedApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTFromCookieInvalidToken(t *testing.T) {
	app := newProtectedApp("secret")

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "lg_token", Value: "bukan.jwt.valid"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTFromCookieWrongSecret(t *testing.T) {
	app := newProtectedApp("secret")

	token, err := utils.SignJWT("kunci-lain", uuid.NewString(), 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "lg_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTFromCookieValid(t *testing.T) {
	app := newProtectedApp("secret")

	token, err := utils.SignJWT("secret", uuid.NewString(), 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "lg_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWizardSessionIssuesCookie(t *testing.T) {
	app := fiber.New()
	app.Use(WizardSession())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var issued string
	for _, ck := range resp.Cookies() {
		if ck.Name == "lg_session" {
			issued = ck.Value
		}
	}
	require.NotEmpty(t, issued)
	_, err = uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestWizardSessionKeepsExistingCookie(t *testing.T) {
	app := fiber.New()
	app.Use(WizardSession())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})

	sid := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "lg_session", Value: sid})

	resp, err := app.Test(req)
	require.NoError(t, err)

	// session id lama tetap dipakai, tidak ada cookie baru
	for _, ck := range resp.Cookies() {
		assert.NotEqual(t, "lg_session", ck.Name)
	}
}
