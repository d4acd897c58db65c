package models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	WANumber string    `gorm:"column:wa_number;type:varchar(30);uniqueIndex" json:"wa_number"`

	Password string `gorm:"not null" json:"-"`

	TokenBalance       int64              `gorm:"not null;default:0" json:"token_balance"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"subscription_status"`
	IsActive           bool               `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
