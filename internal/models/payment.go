package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

// Payment records a (simulated) token top-up checkout for a package.
type Payment struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	PackageID   string        `gorm:"type:varchar(20);not null" json:"package_id"`
	Reference   string        `gorm:"type:varchar(50);uniqueIndex" json:"reference"` // INV-{kode}
	Amount      int64         `json:"amount"`
	Tokens      int64         `json:"tokens"`
	CheckoutURL string        `gorm:"type:text" json:"checkout_url"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'UNPAID'" json:"status"`
	PaidAt      *time.Time    `json:"paid_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
