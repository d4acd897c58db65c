package models

import (
	"time"

	"gorm.io/datatypes"
)

// Package is the token subscription catalog. Rows are seeded at boot and
// read-only at runtime.
type Package struct {
	ID       string         `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name     string         `gorm:"not null" json:"name"`
	Price    int64          `gorm:"not null" json:"price"` // IDR per bulan
	Tokens   int64          `gorm:"not null" json:"tokens"`
	Features datatypes.JSON `json:"features"`
	Popular  bool           `gorm:"default:false" json:"popular"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
