package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookie = "lg_session"

// WizardSession attaches an anonymous session id to every request so the
// draft store can scope wizard state per browser, without requiring login.
func WizardSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(sessionCookie)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				SameSite: "Lax",
				MaxAge:   30 * 24 * 60 * 60,
			})
		}

		c.Locals("sessionId", sid)
		return c.Next()
	}
}

// SessionID reads the wizard session id attached by WizardSession.
func SessionID(c *fiber.Ctx) string {
	if v, ok := c.Locals("sessionId").(string); ok {
		return v
	}
	return ""
}
