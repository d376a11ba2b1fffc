package mocks

import (
	"editorial/internal/models"
	"editorial/internal/services"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleWorkflow
type MockArticleWorkflow struct {
	mock.Mock
}

func (m *MockArticleWorkflow) SubmitNewArticle(actor models.Actor, in services.SubmitArticleInput) (*models.Article, error) {
	args := m.Called(actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleWorkflow) UpdateArticle(actor models.Actor, id uint, in services.UpdateArticleInput) (*models.Article, error) {
	args := m.Called(actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleWorkflow) GetArticle(actor models.Actor, id uint) (*models.Article, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleWorkflow) ListArticles(actor models.Actor, filter services.ListFilter) ([]models.Article, error) {
	args := m.Called(actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}
