package models

import (
	"time"

	"gorm.io/gorm"
)

// Attachment is one uploaded file bound to an article under a fixed tag.
// An attachment whose ArticleID is nil is an orphan and will be destroyed
// by the next reclamation sweep.
type Attachment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Tag       string         `gorm:"type:varchar(20);not null;index" json:"tag"`
	Filename  string         `gorm:"not null" json:"filename"`
	BlobRef   string         `gorm:"type:varchar(36);not null" json:"-"`
	ArticleID *uint          `gorm:"index" json:"article_id,omitempty"`
}

// Orphaned reports whether the attachment has no owning article.
func (a *Attachment) Orphaned() bool {
	return a.ArticleID == nil
}
