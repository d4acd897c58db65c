package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/landinggenius/backend/internal/models"
)

var (
	ErrNotFound           = errors.New("record tidak ditemukan")
	ErrInsufficientTokens = errors.New("token tidak cukup")
	ErrDuplicateEmail     = errors.New("email sudah terdaftar")
	ErrDuplicateWANumber  = errors.New("nomor WhatsApp sudah terdaftar")
)

// UserRepository owns user records and the token ledger. Balance mutations
// are serialized at the storage layer: the balance never goes negative and a
// failed spend leaves it untouched.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error

	// SpendTokens fails with ErrInsufficientTokens when balance < amount,
	// otherwise decrements exactly amount and writes a debit ledger row.
	SpendTokens(ctx context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error
	// AddTokens increments the balance and writes a credit ledger row.
	AddTokens(ctx context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByPublicURL resolves a landing page slug, published projects only.
	GetByPublicURL(ctx context.Context, publicURL string) (*models.Project, error)
	// Publish assigns the public URL on first call and marks the project
	// published; repeated calls keep the same URL.
	Publish(ctx context.Context, id uuid.UUID) (*models.Project, error)
}

type PackageRepository interface {
	List(ctx context.Context) ([]models.Package, error)
	GetByID(ctx context.Context, id string) (*models.Package, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
}
