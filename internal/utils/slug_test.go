package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublicURLSlug(t *testing.T) {
	now := time.UnixMilli(1756200001234)

	tests := []struct {
		name    string
		product string
		want    string
	}{
		{"nama biasa", "Nasi Gudeg Bu Sari", "nasi-gudeg-bu-sari-1234"},
		{"simbol jadi satu hyphen", "Kopi & Teh!!", "kopi-teh-1234"},
		{"hyphen pinggir dibuang", "  --Jasa Logo--  ", "jasa-logo-1234"},
		{"huruf besar diturunkan", "LAUNDRY KILAT", "laundry-kilat-1234"},
		{"nama kosong", "", "landing-1234"},
		{"hanya simbol", "!!!", "landing-1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicURLSlug(tt.product, now))
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, CheckPassword(hash, "rahasia123"))
	assert.False(t, CheckPassword(hash, "salah123"))
}
