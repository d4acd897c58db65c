package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/utils"
)

type GormUserRepository struct {
	DB *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(ctx context.Context, u *models.User) error {
	db := r.DB.WithContext(ctx)

	var existing models.User
	if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if u.WANumber != "" {
		if err := db.Where("wa_number = ?", u.WANumber).First(&existing).Error; err == nil {
			return ErrDuplicateWANumber
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return db.Create(u).Error
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

// SpendTokens decrements the balance with a conditional UPDATE so two
// concurrent spends can never both pass the balance check, and writes the
// ledger row in the same DB transaction.
func (r *GormUserRepository) SpendTokens(ctx context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error {
	if amount <= 0 {
		return errors.New("jumlah token harus lebih dari nol")
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND token_balance >= ?", userID, amount).
			Update("token_balance", gorm.Expr("token_balance - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var u models.User
			if err := tx.First(&u, "id = ?", userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			return ErrInsufficientTokens
		}

		ledger := models.TokenTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      amount,
			Type:        models.TokenTrxDebit,
			Description: description,
			ReferenceID: referenceID,
		}
		return tx.Create(&ledger).Error
	})
}

func (r *GormUserRepository) AddTokens(ctx context.Context, userID uuid.UUID, amount int64, referenceID *uuid.UUID, description string) error {
	if amount <= 0 {
		return errors.New("jumlah token harus lebih dari nol")
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("token_balance", gorm.Expr("token_balance + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		ledger := models.TokenTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      amount,
			Type:        models.TokenTrxCredit,
			Description: description,
			ReferenceID: referenceID,
		}
		return tx.Create(&ledger).Error
	})
}

type GormProjectRepository struct {
	DB *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{DB: db}
}

func (r *GormProjectRepository) Create(ctx context.Context, p *models.Project) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) Update(ctx context.Context, p *models.Project) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProjectRepository) GetByPublicURL(ctx context.Context, publicURL string) (*models.Project, error) {
	var p models.Project
	err := r.DB.WithContext(ctx).
		Where("public_url = ? AND status = ?", publicURL, models.ProjectStatusPublished).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProjectRepository) Publish(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.PublicURL == nil {
		slug := utils.PublicURLSlug(p.ProductName, time.Now())
		p.PublicURL = &slug
	}
	p.Status = models.ProjectStatusPublished

	if err := r.DB.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

type GormPackageRepository struct {
	DB *gorm.DB
}

func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{DB: db}
}

func (r *GormPackageRepository) List(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	err := r.DB.WithContext(ctx).Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *GormPackageRepository) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.DB.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

type GormPaymentRepository struct {
	DB *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{DB: db}
}

func (r *GormPaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormPaymentRepository) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("reference = ?", reference).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	return r.DB.WithContext(ctx).Save(p).Error
}
