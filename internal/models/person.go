package models

import (
	"time"

	"gorm.io/gorm"
)

// Author is a person who may be listed on articles.
type Author struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	MiddleName string         `json:"middle_name,omitempty"`
}

// Censor is a person eligible to review articles. A censor record is created
// implicitly when a submission requests review assignment with new reviewer
// details, and destroyed again if that submission turns out invalid.
type Censor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Degree    string         `json:"degree,omitempty"`
	Post      string         `json:"post,omitempty"`
}
