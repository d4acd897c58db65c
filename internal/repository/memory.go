package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/utils"
)

// In-memory adapters implementing the same interfaces as the GORM ones,
// used as test doubles. A single mutex per store serializes balance
// mutations, matching the conditional-update guarantee of the SQL layer.

type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[uuid.UUID]models.User
	ledger []models.TokenTransaction
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[uuid.UUID]models.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
		if u.WANumber != "" && existing.WANumber == u.WANumber {
			return ErrDuplicateWANumber
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) SpendTokens(_ context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	if u.TokenBalance < amount {
		return ErrInsufficientTokens
	}

	u.TokenBalance -= amount
	u.UpdatedAt = time.Now()
	r.users[userID] = u
	r.ledger = append(r.ledger, models.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        models.TokenTrxDebit,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (r *MemoryUserRepository) AddTokens(_ context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}

	u.TokenBalance += amount
	u.UpdatedAt = time.Now()
	r.users[userID] = u
	r.ledger = append(r.ledger, models.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        models.TokenTrxCredit,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	})
	return nil
}

// Ledger returns a copy of all token transactions, oldest first.
func (r *MemoryUserRepository) Ledger() []models.TokenTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.TokenTransaction, len(r.ledger))
	copy(out, r.ledger)
	return out
}

type MemoryProjectRepository struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: map[uuid.UUID]models.Project{}}
}

func (r *MemoryProjectRepository) Create(_ context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusDraft
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.projects[p.ID] = *p
	return nil
}

func (r *MemoryProjectRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProjectRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Project
	for _, p := range r.projects {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryProjectRepository) Update(_ context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.projects[p.ID]
	if !ok {
		return ErrNotFound
	}

	// updated_at must advance even within clock resolution
	now := time.Now()
	if !now.After(old.UpdatedAt) {
		now = old.UpdatedAt.Add(time.Microsecond)
	}
	p.UpdatedAt = now
	r.projects[p.ID] = *p
	return nil
}

func (r *MemoryProjectRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *MemoryProjectRepository) GetByPublicURL(_ context.Context, publicURL string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.Status == models.ProjectStatusPublished && p.PublicURL != nil && *p.PublicURL == publicURL {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryProjectRepository) Publish(_ context.Context, id uuid.UUID) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	if p.PublicURL == nil {
		slug := utils.PublicURLSlug(p.ProductName, time.Now())
		p.PublicURL = &slug
	}
	p.Status = models.ProjectStatusPublished
	p.UpdatedAt = time.Now()
	r.projects[id] = p

	out := p
	return &out, nil
}

type MemoryPackageRepository struct {
	mu       sync.Mutex
	packages []models.Package
}

func NewMemoryPackageRepository(packages []models.Package) *MemoryPackageRepository {
	return &MemoryPackageRepository{packages: packages}
}

func (r *MemoryPackageRepository) List(_ context.Context) ([]models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Package, len(r.packages))
	copy(out, r.packages)
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *MemoryPackageRepository) GetByID(_ context.Context, id string) (*models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pkg := range r.packages {
		if pkg.ID == id {
			out := pkg
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryPaymentRepository struct {
	mu       sync.Mutex
	payments map[uuid.UUID]models.Payment
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{payments: map[uuid.UUID]models.Payment{}}
}

func (r *MemoryPaymentRepository) Create(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.payments[p.ID] = *p
	return nil
}

func (r *MemoryPaymentRepository) GetByReference(_ context.Context, reference string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.payments {
		if p.Reference == reference {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPaymentRepository) Update(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.payments[p.ID] = *p
	return nil
}
