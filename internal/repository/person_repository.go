package repository

import (
	"editorial/internal/models"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrCensorNotFound = errors.New("censor not found")
)

type AuthorRepository interface {
	Create(author *models.Author) error
	FindByID(id uint) (*models.Author, error)
	FindByIDs(ids []uint) ([]models.Author, error)
	FindAll() ([]models.Author, error)
	Update(author *models.Author) error
}

type CensorRepository interface {
	Create(censor *models.Censor) error
	FindByID(id uint) (*models.Censor, error)
	Delete(id uint) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

func (r *authorRepository) FindByID(id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// FindByIDs resolves author ids to records; an id that does not resolve is an
// error so a submission cannot silently list ghost authors.
func (r *authorRepository) FindByIDs(ids []uint) ([]models.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var authors []models.Author
	if err := r.db.Find(&authors, ids).Error; err != nil {
		return nil, err
	}
	if len(authors) != len(ids) {
		return nil, ErrAuthorNotFound
	}
	return authors, nil
}

func (r *authorRepository) FindAll() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

type censorRepository struct {
	db *gorm.DB
}

func NewCensorRepository(db *gorm.DB) CensorRepository {
	return &censorRepository{db: db}
}

func (r *censorRepository) Create(censor *models.Censor) error {
	return r.db.Create(censor).Error
}

func (r *censorRepository) FindByID(id uint) (*models.Censor, error) {
	var censor models.Censor
	if err := r.db.First(&censor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCensorNotFound
		}
		return nil, err
	}
	return &censor, nil
}

func (r *censorRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Censor{}, id).Error
}
