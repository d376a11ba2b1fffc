package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"editorial/internal/mocks"
	"editorial/internal/models"
	"editorial/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupControllerWithMock() (*ArticleController, *mocks.MockArticleWorkflow) {
	mockWorkflow := new(mocks.MockArticleWorkflow)
	controller := NewArticleController(mockWorkflow)
	return controller, mockWorkflow
}

func addActorMiddleware(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func ptr(id uint) *uint { return &id }

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		assert.NoError(t, err)
		_, err = part.Write([]byte("content of " + filename))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestNewArticleController(t *testing.T) {
	controller, _ := setupControllerWithMock()
	assert.NotNil(t, controller)
}

func TestSubmitArticle(t *testing.T) {
	author := models.Actor{Role: models.RoleAuthor, PersonID: ptr(1)}

	tests := []struct {
		name           string
		fields         map[string]string
		files          map[string]string
		setupMock      func(*mocks.MockArticleWorkflow)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful submission",
			fields: map[string]string{"title": "Sample"},
			files: map[string]string{
				"article": "article.pdf", "resume_rus": "resume_rus.pdf",
				"resume_eng": "resume_eng.pdf", "cover_note": "cover_note.pdf",
			},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("SubmitNewArticle", mock.Anything, mock.Anything).
					Return(&models.Article{ID: 1, Title: "Sample"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Article submitted successfully",
		},
		{
			name:   "missing person record",
			fields: map[string]string{"title": "Sample"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("SubmitNewArticle", mock.Anything, mock.Anything).
					Return(nil, services.ErrPrerequisiteMissing)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "You must fill personal information",
		},
		{
			name:   "forbidden",
			fields: map[string]string{"title": "Sample"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("SubmitNewArticle", mock.Anything, mock.Anything).
					Return(nil, services.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not allowed",
		},
		{
			name:   "validation failure",
			fields: map[string]string{"title": "Sample"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("SubmitNewArticle", mock.Anything, mock.Anything).
					Return(nil, &services.ValidationError{Violations: []models.Violation{
						{Field: "resume_rus", Code: models.CodeMissing, Message: "resume_rus attachment is missing"},
					}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "Validation failed",
		},
		{
			name:   "workflow error",
			fields: map[string]string{"title": "Sample"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("SubmitNewArticle", mock.Anything, mock.Anything).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to submit article",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockWorkflow := setupControllerWithMock()
			tt.setupMock(mockWorkflow)

			router := setupTestRouter()
			router.Use(addActorMiddleware(author))
			router.POST("/article", controller.SubmitArticle)

			body, contentType := multipartBody(t, tt.fields, tt.files)
			req := httptest.NewRequest("POST", "/article", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockWorkflow.AssertExpectations(t)
		})
	}
}

func TestSubmitArticleForwardsPayload(t *testing.T) {
	author := models.Actor{Role: models.RoleAuthor, PersonID: ptr(1)}
	controller, mockWorkflow := setupControllerWithMock()

	mockWorkflow.On("SubmitNewArticle", author, mock.MatchedBy(func(in services.SubmitArticleInput) bool {
		return in.Title == "Sample" &&
			in.HasReview &&
			in.Review != nil && in.Review.Filename == "review.pdf" &&
			in.Censor.FirstName == "a1" && in.Censor.LastName == "a3" &&
			len(in.AuthorIDs) == 2 &&
			in.Files["article"].Filename == "article.pdf"
	})).Return(&models.Article{ID: 1}, nil)

	router := setupTestRouter()
	router.Use(addActorMiddleware(author))
	router.POST("/article", controller.SubmitArticle)

	body, contentType := multipartBody(t,
		map[string]string{
			"title":             "Sample",
			"author_ids":        "2, 3",
			"has_review":        "1",
			"censor_first_name": "a1",
			"censor_last_name":  "a3",
		},
		map[string]string{"article": "article.pdf", "review": "review.pdf"},
	)
	req := httptest.NewRequest("POST", "/article", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockWorkflow.AssertExpectations(t)
}

func TestUpdateArticle(t *testing.T) {
	censor := models.Actor{Role: models.RoleCensor, PersonID: ptr(5), IsApproved: true}

	tests := []struct {
		name           string
		target         string
		fields         map[string]string
		files          map[string]string
		setupMock      func(*mocks.MockArticleWorkflow)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful update",
			target: "/article/10",
			fields: map[string]string{"status": "3", "reject_reason": "incomplete"},
			files:  map[string]string{"review": "review.pdf"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("UpdateArticle", mock.Anything, uint(10), mock.MatchedBy(func(in services.UpdateArticleInput) bool {
					return in.Status != nil && *in.Status == models.StatusRejectedByCensor &&
						in.RejectReason != nil && *in.RejectReason == "incomplete" &&
						in.Review != nil && in.Review.Filename == "review.pdf"
				})).Return(&models.Article{ID: 10, Status: models.StatusRejectedByCensor}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Article updated successfully",
		},
		{
			name:           "invalid id",
			target:         "/article/abc",
			fields:         map[string]string{"status": "3"},
			setupMock:      func(m *mocks.MockArticleWorkflow) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid article ID",
		},
		{
			name:   "not found",
			target: "/article/99",
			fields: map[string]string{"title": "New title"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("UpdateArticle", mock.Anything, uint(99), mock.Anything).
					Return(nil, services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Article not found",
		},
		{
			name:   "forbidden once status left to_review",
			target: "/article/10",
			fields: map[string]string{"status": "4"},
			setupMock: func(m *mocks.MockArticleWorkflow) {
				m.On("UpdateArticle", mock.Anything, uint(10), mock.Anything).
					Return(nil, services.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockWorkflow := setupControllerWithMock()
			tt.setupMock(mockWorkflow)

			router := setupTestRouter()
			router.Use(addActorMiddleware(censor))
			router.PUT("/article/:id", controller.UpdateArticle)

			body, contentType := multipartBody(t, tt.fields, tt.files)
			req := httptest.NewRequest("PUT", tt.target, body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockWorkflow.AssertExpectations(t)
		})
	}
}

func TestGetArticleByID(t *testing.T) {
	guest := models.Guest()
	controller, mockWorkflow := setupControllerWithMock()

	mockWorkflow.On("GetArticle", guest, uint(1)).Return(nil, services.ErrUnauthorized)
	mockWorkflow.On("GetArticle", guest, uint(2)).
		Return(&models.Article{ID: 2, Status: models.StatusPublished}, nil)

	router := setupTestRouter()
	router.Use(addActorMiddleware(guest))
	router.GET("/article/:id", controller.GetArticleByID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/article/1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/article/2", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockWorkflow.AssertExpectations(t)
}

func TestListArticles(t *testing.T) {
	guest := models.Guest()
	controller, mockWorkflow := setupControllerWithMock()

	mockWorkflow.On("ListArticles", guest, mock.MatchedBy(func(filter services.ListFilter) bool {
		return filter.AuthorID != nil && *filter.AuthorID == 4 && filter.Status == nil
	})).Return([]models.Article{{ID: 1}, {ID: 2}}, nil)

	router := setupTestRouter()
	router.Use(addActorMiddleware(guest))
	router.GET("/article", controller.ListArticles)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/article?author_id=4", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response["data"], 2)

	mockWorkflow.AssertExpectations(t)
}
