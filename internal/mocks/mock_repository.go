package mocks

import (
	"editorial/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Save(article *models.Article, detached []models.Attachment) error {
	args := m.Called(article, detached)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindAll() ([]models.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByAuthorID(authorID uint) ([]models.Article, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByFilters(status *models.Status, censorID *uint) ([]models.Article, error) {
	args := m.Called(status, censorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) InvalidateCache(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) InvalidateAllCache() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockAuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *MockAuthorRepository) FindByID(id uint) (*models.Author, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByIDs(ids []uint) ([]models.Author, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindAll() ([]models.Author, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorRepository) Update(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

// Shared MockCensorRepository
type MockCensorRepository struct {
	mock.Mock
}

func (m *MockCensorRepository) Create(censor *models.Censor) error {
	args := m.Called(censor)
	return args.Error(0)
}

func (m *MockCensorRepository) FindByID(id uint) (*models.Censor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Censor), args.Error(1)
}

func (m *MockCensorRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockAttachmentRepository
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) FindOrphans() ([]models.Attachment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ReclaimOrphans() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// Shared MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) ArticleStatusChanged(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
