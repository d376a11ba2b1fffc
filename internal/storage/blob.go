// Package storage holds uploaded file contents and hands out opaque
// references; attachment records keep only the reference.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBlobNotFound = errors.New("blob not found")

type BlobStore interface {
	// Store persists the bytes and returns an opaque reference.
	Store(data []byte, mimeType string) (string, error)
	// Open returns the bytes and mime type behind a reference.
	Open(ref string) ([]byte, string, error)
	// Discard drops the blob behind a reference. Discarding an unknown
	// reference is not an error.
	Discard(ref string) error
}

// Blob is a stored upload. Keeping blobs in the database rides on the same
// transactional guarantees as the rest of the article save.
type Blob struct {
	Ref       string    `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `gorm:"index"`
	MimeType  string    `gorm:"type:varchar(100)"`
	Data      []byte
}

type gormBlobStore struct {
	db *gorm.DB
}

func NewGormBlobStore(db *gorm.DB) BlobStore {
	return &gormBlobStore{db: db}
}

func (s *gormBlobStore) Store(data []byte, mimeType string) (string, error) {
	blob := Blob{
		Ref:      uuid.NewString(),
		MimeType: mimeType,
		Data:     data,
	}
	if err := s.db.Create(&blob).Error; err != nil {
		return "", err
	}
	return blob.Ref, nil
}

func (s *gormBlobStore) Open(ref string) ([]byte, string, error) {
	var blob Blob
	if err := s.db.First(&blob, "ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBlobNotFound
		}
		return nil, "", err
	}
	return blob.Data, blob.MimeType, nil
}

func (s *gormBlobStore) Discard(ref string) error {
	return s.db.Delete(&Blob{}, "ref = ?", ref).Error
}
