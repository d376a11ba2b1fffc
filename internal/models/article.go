package models

import (
	"time"

	"gorm.io/gorm"
)

// Attachment tags. Every attachment carries exactly one of these; the tag
// identifies the file's role in the submission, not a free-form label.
const (
	ArticleFileTag   = "article"
	ResumeRusFileTag = "resume_rus"
	ResumeEngFileTag = "resume_eng"
	CoverNoteFileTag = "cover_note"
	ReviewFileTag    = "review"
)

// BaseFileTags are the tags required on every article that is not rejected.
var BaseFileTags = []string{ArticleFileTag, ResumeRusFileTag, ResumeEngFileTag, CoverNoteFileTag}

const (
	MaxAttachments = 5
	MinAuthors     = 1
	MaxAuthors     = 11
)

type Article struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Title        string         `json:"title" example:"On the Decidability of Everything"`
	Status       Status         `gorm:"not null;default:0;index" json:"status" example:"0"`
	RejectReason string         `json:"reject_reason,omitempty"`
	CensorID     *uint          `gorm:"index" json:"censor_id,omitempty"`
	CategoryID   *uint          `json:"category_id,omitempty"`
	JournalID    *uint          `json:"journal_id,omitempty"`

	Censor      *Censor      `gorm:"foreignKey:CensorID" json:"censor,omitempty"`
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Authors     []Author     `gorm:"many2many:article_authors" json:"authors,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:ArticleID" json:"attachments,omitempty"`
}

// AttachmentByTag returns the article's attachment for the given tag, or nil.
// The one-per-tag invariant makes the first match the only match.
func (a *Article) AttachmentByTag(tag string) *Attachment {
	for i := range a.Attachments {
		if a.Attachments[i].Tag == tag {
			return &a.Attachments[i]
		}
	}
	return nil
}

// AuthorIDs returns the ids of the article's authors.
func (a *Article) AuthorIDs() []uint {
	ids := make([]uint, 0, len(a.Authors))
	for _, author := range a.Authors {
		ids = append(ids, author.ID)
	}
	return ids
}

// HasAuthor reports whether the person with the given id is listed as an
// author of the article.
func (a *Article) HasAuthor(personID uint) bool {
	for _, author := range a.Authors {
		if author.ID == personID {
			return true
		}
	}
	return false
}
