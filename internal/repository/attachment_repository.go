package repository

import (
	"editorial/internal/models"
	"editorial/internal/storage"
	"log"

	"gorm.io/gorm"
)

type AttachmentRepository interface {
	FindOrphans() ([]models.Attachment, error)
	// ReclaimOrphans destroys every attachment with no owning article and
	// discards its blob. Safe to call repeatedly; returns the number of
	// attachments reclaimed.
	ReclaimOrphans() (int, error)
}

type attachmentRepository struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

func NewAttachmentRepository(db *gorm.DB, blobs storage.BlobStore) AttachmentRepository {
	return &attachmentRepository{db: db, blobs: blobs}
}

func (r *attachmentRepository) FindOrphans() ([]models.Attachment, error) {
	var orphans []models.Attachment
	err := r.db.Where("article_id IS NULL").Find(&orphans).Error
	return orphans, err
}

func (r *attachmentRepository) ReclaimOrphans() (int, error) {
	orphans, err := r.FindOrphans()
	if err != nil {
		return 0, err
	}

	reclaimed := 0
	for i := range orphans {
		if err := r.blobs.Discard(orphans[i].BlobRef); err != nil {
			// The blob stays reclaimable; the next sweep retries it.
			log.Printf("Failed to discard blob %s: %v", orphans[i].BlobRef, err)
			continue
		}
		if err := r.db.Unscoped().Delete(&models.Attachment{}, orphans[i].ID).Error; err != nil {
			log.Printf("Failed to delete orphaned attachment %d: %v", orphans[i].ID, err)
			continue
		}
		reclaimed++
	}
	return reclaimed, nil
}
