package models

import (
	"time"

	"github.com/google/uuid"
)

type TokenTrxType string

const (
	TokenTrxCredit TokenTrxType = "credit" // Token masuk (pembelian paket)
	TokenTrxDebit  TokenTrxType = "debit"  // Token terpakai (buat project)
	TokenTrxRefund TokenTrxType = "refund" // Pengembalian token
)

type TokenTransaction struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID    `gorm:"type:uuid;index;not null" json:"user_id"`
	Amount      int64        `gorm:"not null" json:"amount"`
	Type        TokenTrxType `gorm:"type:varchar(20);not null" json:"type"`
	Description string       `gorm:"type:text" json:"description"`
	ReferenceID *uuid.UUID   `gorm:"type:uuid;index" json:"reference_id,omitempty"` // ID Project atau ID Payment
	CreatedAt   time.Time    `json:"created_at"`

	// Relation
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
