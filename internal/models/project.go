package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPublished ProjectStatus = "published"
	ProjectStatusArchived  ProjectStatus = "archived"
)

type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	ProductName  string `gorm:"not null" json:"product_name"`
	TargetMarket string `gorm:"type:text" json:"target_market"`
	Benefits     string `gorm:"type:text" json:"benefits"`

	SelectedProblem  datatypes.JSON `json:"selected_problem"`
	PatternInterrupt datatypes.JSON `json:"pattern_interrupt"`
	HTMLCode         string         `gorm:"column:html_code;type:text" json:"html_code"`

	Status    ProjectStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	PublicURL *string       `gorm:"column:public_url;uniqueIndex" json:"public_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
