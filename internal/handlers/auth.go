package handlers

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/repository"
	"github.com/landinggenius/backend/internal/services/gateway"
	"github.com/landinggenius/backend/internal/utils"
)

type AuthHandler struct {
	Users     repository.UserRepository
	Packages  repository.PackageRepository
	Payments  repository.PaymentRepository
	Gateway   *gateway.Service
	JWTSecret string
	Expires   int
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	waRe    = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,13}$`)
)

type RegisterReq struct {
	Name            string `json:"name"`
	WANumber        string `json:"wa_number"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PackageID       string `json:"packageId"`
}

// Registration is a 4-step sub-machine on the client: Data Diri, Akun,
// Paket, Pembayaran. validateRegistrationStep gates one step; Register
// re-runs all of them before creating the account.
func (h *AuthHandler) validateRegistrationStep(c *fiber.Ctx, step int, req RegisterReq) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case 1: // Data Diri
		name := strings.TrimSpace(req.Name)
		if name == "" {
			errs.Add("name", "Nama lengkap wajib diisi")
		} else if len(name) < 2 {
			errs.Add("name", "Nama minimal 2 karakter")
		}
		wa := strings.TrimSpace(req.WANumber)
		if wa == "" {
			errs.Add("wa_number", "Nomor WhatsApp wajib diisi")
		} else if !waRe.MatchString(wa) {
			errs.Add("wa_number", "Format nomor WhatsApp tidak valid")
		}

	case 2: // Buat Password
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			errs.Add("email", "Email wajib diisi")
		} else if !emailRe.MatchString(email) {
			errs.Add("email", "Format email tidak valid")
		}
		if req.Password == "" {
			errs.Add("password", "Password wajib diisi")
		} else if len(req.Password) < 6 {
			errs.Add("password", "Password minimal 6 karakter")
		}
		if req.ConfirmPassword == "" {
			errs.Add("confirmPassword", "Konfirmasi password wajib diisi")
		} else if req.Password != req.ConfirmPassword {
			errs.Add("confirmPassword", "Password tidak cocok")
		}

	case 3: // Pilih Paket
		if req.PackageID == "" {
			errs.Add("packageId", "Silakan pilih paket terlebih dahulu")
		} else if _, err := h.Packages.GetByID(c.Context(), req.PackageID); err != nil {
			errs.Add("packageId", "Paket tidak ditemukan")
		}

	case 4: // Pembayaran (simulasi, tidak ada field)
	}

	return errs
}

type ValidateStepReq struct {
	Step int `json:"step"`
	RegisterReq
}

// ValidateStep handles POST /api/auth/register/validate: the per-step gate
// of the registration sub-machine.
func (h *AuthHandler) ValidateStep(c *fiber.Ctx) error {
	var req ValidateStepReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if req.Step < 1 || req.Step > 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Step tidak dikenal",
		})
	}

	if errs := h.validateRegistrationStep(c, req.Step, req.RegisterReq); len(errs) > 0 {
		return validationFail(c, errs)
	}

	return c.JSON(fiber.Map{"success": true})
}

// Register handles POST /api/auth/register: final step of the wizard.
// Creates the account with the package's initial token grant, records the
// (simulated, immediately PAID) package payment and signs the user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	errs := FieldErrors{}
	for step := 1; step <= 4; step++ {
		for field, msgs := range h.validateRegistrationStep(c, step, req) {
			errs[field] = append(errs[field], msgs...)
		}
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	pkg, err := h.Packages.GetByID(c.Context(), req.PackageID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan server",
		})
	}

	pw, err := utils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memproses password",
		})
	}

	u := models.User{
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		WANumber:           strings.TrimSpace(req.WANumber),
		Password:           pw,
		SubscriptionStatus: models.SubscriptionActive,
		IsActive:           true,
	}

	if err := h.Users.Create(c.Context(), &u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			e := FieldErrors{}
			e.Add("email", "Email sudah terdaftar")
			return validationFail(c, e)
		case errors.Is(err, repository.ErrDuplicateWANumber):
			e := FieldErrors{}
			e.Add("wa_number", "Nomor WhatsApp sudah terdaftar")
			return validationFail(c, e)
		default:
			zap.L().Error("create user", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Gagal register",
			})
		}
	}

	// Pembayaran disimulasikan: payment record langsung PAID, token masuk
	// lewat ledger supaya saldo awal punya jejak kredit.
	now := time.Now()
	payment := models.Payment{
		UserID:    u.ID,
		PackageID: pkg.ID,
		Reference: h.Gateway.NewReference(),
		Amount:    pkg.Price,
		Tokens:    pkg.Tokens,
		Status:    models.PaymentStatusPaid,
		PaidAt:    &now,
	}
	if err := h.Payments.Create(c.Context(), &payment); err != nil {
		zap.L().Error("create registration payment", zap.Error(err))
	}

	if err := h.Users.AddTokens(c.Context(), u.ID, pkg.Tokens, &payment.ID, "Token awal paket "+pkg.Name); err != nil {
		zap.L().Error("grant initial tokens", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal memberikan token awal",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal membuat token",
		})
	}

	h.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registrasi berhasil! Selamat datang di LandingGenius",
		"data": fiber.Map{
			"user": fiber.Map{
				"id":            u.ID,
				"name":          u.Name,
				"email":         u.Email,
				"wa_number":     u.WANumber,
				"token_balance": pkg.Tokens,
			},
		},
	})
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	errs := FieldErrors{}
	if email == "" {
		errs.Add("email", "Email wajib diisi")
	}
	if password == "" {
		errs.Add("password", "Password wajib diisi")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	u, err := h.Users.GetByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Email atau password salah",
		})
	}

	if !u.IsActive {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Akun tidak aktif",
		})
	}

	if !utils.CheckPassword(u.Password, password) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Email atau password salah",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Gagal membuat token",
		})
	}

	h.setAuthCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login berhasil",
		"data": fiber.Map{
			"user": fiber.Map{
				"id":            u.ID,
				"name":          u.Name,
				"email":         u.Email,
				"token_balance": u.TokenBalance,
			},
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "lg_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout berhasil",
	})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	u, err := h.Users.GetByID(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "User tidak ditemukan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":                  u.ID,
			"name":                u.Name,
			"email":               u.Email,
			"wa_number":           u.WANumber,
			"token_balance":       u.TokenBalance,
			"subscription_status": u.SubscriptionStatus,
		},
	})
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "lg_token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
}
