package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/repository"
	"github.com/landinggenius/backend/internal/services/gateway"
)

// PaymentHandler covers token top-ups after registration. The checkout is
// simulated: Topup issues an UNPAID payment with a checkout URL, and the
// signed callback marks it PAID and credits the tokens.
type PaymentHandler struct {
	Payments repository.PaymentRepository
	Packages repository.PackageRepository
	Users    repository.UserRepository
	Gateway  *gateway.Service
}

func NewPaymentHandler(payments repository.PaymentRepository, packages repository.PackageRepository, users repository.UserRepository, gw *gateway.Service) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Packages: packages, Users: users, Gateway: gw}
}

// GetChannels handles GET /api/payments/channels.
func (h *PaymentHandler) GetChannels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.Gateway.Channels()})
}

type TopupReq struct {
	PackageID string `json:"packageId"`
}

// Topup handles POST /api/tokens/topup.
func (h *PaymentHandler) Topup(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req TopupReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body request tidak valid",
		})
	}

	pkg, err := h.Packages.GetByID(c.Context(), req.PackageID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Paket tidak ditemukan",
		})
	}

	payment := models.Payment{
		UserID:    uid,
		PackageID: pkg.ID,
		Reference: h.Gateway.NewReference(),
		Amount:    pkg.Price,
		Tokens:    pkg.Tokens,
		Status:    models.PaymentStatusUnpaid,
	}
	payment.CheckoutURL = h.Gateway.CheckoutURL(payment.Reference)

	if err := h.Payments.Create(c.Context(), &payment); err != nil {
		zap.L().Error("create topup payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal membuat transaksi",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reference":    payment.Reference,
			"checkout_url": payment.CheckoutURL,
			"amount":       payment.Amount,
		},
	})
}

type CallbackPayload struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // PAID, EXPIRED, FAILED
	PaidAt    int64  `json:"paid_at"`
}

// HandleCallback handles POST /api/payments/callback from the (simulated)
// gateway. The body must be signed with the shared private key.
func (h *PaymentHandler) HandleCallback(c *fiber.Ctx) error {
	signature := c.Get("X-Callback-Signature")
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing signature"})
	}

	body := c.Body()
	if !h.Gateway.ValidateCallback(signature, string(body)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid signature"})
	}

	var payload CallbackPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payload"})
	}

	payment, err := h.Payments.GetByReference(c.Context(), payload.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Transaksi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Terjadi kesalahan server"})
	}

	// Callback boleh datang berulang; token hanya dikredit pada transisi
	// pertama ke PAID.
	if payment.Status == models.PaymentStatusPaid {
		return c.JSON(fiber.Map{"success": true})
	}

	payment.Status = models.PaymentStatus(payload.Status)
	if payload.PaidAt > 0 {
		t := time.Unix(payload.PaidAt, 0)
		payment.PaidAt = &t
	}

	if err := h.Payments.Update(c.Context(), payment); err != nil {
		zap.L().Error("update payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal memperbarui transaksi"})
	}

	if payment.Status == models.PaymentStatusPaid {
		if err := h.Users.AddTokens(c.Context(), payment.UserID, payment.Tokens, &payment.ID, "Top up token"); err != nil {
			zap.L().Error("credit topup tokens", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menambahkan token"})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
