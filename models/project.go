package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
)

// Project represents a portfolio entry shown on the site
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug         string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"not null"`
	Client       string                      `json:"client" db:"client" gorm:"type:text;not null"`
	Duration     string                      `json:"duration" db:"duration" gorm:"type:text;not null"`
	Status       ProjectStatus               `json:"status" db:"status" gorm:"type:text;not null"`
	ImageURL     *string                     `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Date         datatypes.Date              `json:"date" db:"date" gorm:"not null"`
	URL          *string                     `json:"url,omitempty" db:"url" gorm:"type:text"`
	CreatedAt    time.Time                   `json:"createdAt" db:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
