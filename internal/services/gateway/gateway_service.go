package gateway

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Service simulates a hosted payment gateway for token top-ups. It mirrors
// the reference/checkout/callback shape of an Indonesian gateway but never
// performs network I/O: payment here is a simulation, the "checkout" is
// confirmed by posting a signed callback.
type Service struct {
	PrivateKey string
	BaseURL    string
}

func New(privateKey, baseURL string) *Service {
	return &Service{PrivateKey: privateKey, BaseURL: strings.TrimRight(baseURL, "/")}
}

// NewReference issues a merchant reference, format INV-{12 hex}.
func (s *Service) NewReference() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return "INV-" + strings.ToUpper(hex.EncodeToString(b))
}

func (s *Service) CheckoutURL(reference string) string {
	return s.BaseURL + "/checkout/" + reference
}

// Signature signs a transaction: HMAC-SHA256( reference + amount, private_key ).
func (s *Service) Signature(reference string, amount int64) string {
	h := hmac.New(sha256.New, []byte(s.PrivateKey))
	h.Write([]byte(fmt.Sprintf("%s%d", reference, amount)))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateCallback checks a callback signature: HMAC-SHA256( body, private_key ).
func (s *Service) ValidateCallback(incomingSig, jsonBody string) bool {
	h := hmac.New(sha256.New, []byte(s.PrivateKey))
	h.Write([]byte(jsonBody))
	calculated := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(calculated), []byte(incomingSig))
}

type PaymentChannel struct {
	Group string `json:"group"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

// Channels returns the static channel catalog the simulated checkout shows.
func (s *Service) Channels() []PaymentChannel {
	return []PaymentChannel{
		{Group: "E-Wallet", Code: "QRIS", Name: "QRIS"},
		{Group: "E-Wallet", Code: "OVO", Name: "OVO"},
		{Group: "E-Wallet", Code: "DANA", Name: "DANA"},
		{Group: "Virtual Account", Code: "BCAVA", Name: "BCA Virtual Account"},
		{Group: "Virtual Account", Code: "BRIVA", Name: "BRI Virtual Account"},
		{Group: "Virtual Account", Code: "MANDIRIVA", Name: "Mandiri Virtual Account"},
	}
}
