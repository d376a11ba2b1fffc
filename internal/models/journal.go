package models

import (
	"time"

	"gorm.io/gorm"
)

// Journal and Category are reference entities; their CRUD lives outside this
// core, which only reads them and links articles to them.

type Journal struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Title     string         `json:"title"`
	Number    int            `json:"number"`
}

type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `json:"name"`
}
