package controllers

import (
	"editorial/internal/middleware"
	"editorial/internal/models"
	"editorial/internal/services"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ArticleWorkflow is the service surface the controller mounts over HTTP.
type ArticleWorkflow interface {
	SubmitNewArticle(actor models.Actor, in services.SubmitArticleInput) (*models.Article, error)
	UpdateArticle(actor models.Actor, id uint, in services.UpdateArticleInput) (*models.Article, error)
	GetArticle(actor models.Actor, id uint) (*models.Article, error)
	ListArticles(actor models.Actor, filter services.ListFilter) ([]models.Article, error)
}

type ArticleController struct {
	workflow ArticleWorkflow
}

func NewArticleController(workflow ArticleWorkflow) *ArticleController {
	return &ArticleController{workflow: workflow}
}

// SubmitArticle godoc
// @Summary Submit a new article
// @Description Submit a manuscript with its attachments; with has_review=1 the review file and reviewer details are required
// @Tags article
// @Accept mpfd
// @Produce json
// @Param title formData string true "Article title"
// @Param article formData file false "Article body file"
// @Param resume_rus formData file false "Russian resume file"
// @Param resume_eng formData file false "English resume file"
// @Param cover_note formData file false "Cover note file"
// @Param has_review formData string false "Set to 1 to assign a reviewer"
// @Param review formData file false "Review file"
// @Success 201 {object} map[string]interface{} "Article submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /article [post]
func (ac *ArticleController) SubmitArticle(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	in := services.SubmitArticleInput{
		Title:      c.PostForm("title"),
		CategoryID: optionalUintForm(c, "category_id"),
		HasReview:  c.PostForm("has_review") == "1" || c.PostForm("has_review") == "true",
		Censor: services.CensorInput{
			FirstName: c.PostForm("censor_first_name"),
			LastName:  c.PostForm("censor_last_name"),
			Degree:    c.PostForm("censor_degree"),
			Post:      c.PostForm("censor_post"),
		},
		Files: map[string]services.FileUpload{},
	}

	for _, raw := range strings.Split(c.PostForm("author_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid author id",
				"error":   "author_ids must be a comma-separated list of integers",
			})
			return
		}
		in.AuthorIDs = append(in.AuthorIDs, uint(id))
	}

	for _, tag := range models.BaseFileTags {
		if file, ok := readFormFile(c, tag); ok {
			in.Files[tag] = file
		}
	}
	if file, ok := readFormFile(c, models.ReviewFileTag); ok {
		in.Review = &file
	}

	article, err := ac.workflow.SubmitNewArticle(actor, in)
	if err != nil {
		respondWorkflowError(c, err, "Failed to submit article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article submitted successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Update article fields; a non-empty review file replaces the review attachment
// @Tags article
// @Accept mpfd
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /article/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	in := services.UpdateArticleInput{
		Title:        optionalStringForm(c, "title"),
		RejectReason: optionalStringForm(c, "reject_reason"),
		CategoryID:   optionalUintForm(c, "category_id"),
	}
	if raw := optionalStringForm(c, "status"); raw != nil {
		value, err := strconv.Atoi(*raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid status",
				"error":   "status must be an integer",
			})
			return
		}
		status := models.Status(value)
		in.Status = &status
	}
	if file, ok := readFormFile(c, models.ReviewFileTag); ok {
		in.Review = &file
	}

	article, err := ac.workflow.UpdateArticle(actor, uint(id), in)
	if err != nil {
		respondWorkflowError(c, err, "Failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve one article, subject to the read permission rules
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	article, err := ac.workflow.GetArticle(actor, uint(id))
	if err != nil {
		respondWorkflowError(c, err, "Failed to retrieve article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// ListArticles godoc
// @Summary List articles
// @Description List articles by author, by status/censor, or everything visible to the caller
// @Tags article
// @Produce json
// @Param author_id query int false "Filter by author"
// @Param status query int false "Filter by status"
// @Param censor_id query int false "Filter by assigned censor"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /article [get]
func (ac *ArticleController) ListArticles(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var filter services.ListFilter
	filter.AuthorID = optionalUintQuery(c, "author_id")
	filter.CensorID = optionalUintQuery(c, "censor_id")
	if raw, ok := c.GetQuery("status"); ok {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid status",
				"error":   "status must be an integer",
			})
			return
		}
		status := models.Status(value)
		filter.Status = &status
	}

	articles, err := ac.workflow.ListArticles(actor, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

func respondWorkflowError(c *gin.Context, err error, message string) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrPrerequisiteMissing):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "You must fill personal information before creating an article",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You are not allowed to perform this action",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":     "error",
			"message":    "Validation failed",
			"violations": validationErr.Violations,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
	}
}

func readFormFile(c *gin.Context, field string) (services.FileUpload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return services.FileUpload{}, false
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return services.FileUpload{}, false
	}
	return services.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func optionalStringForm(c *gin.Context, key string) *string {
	if value, ok := c.GetPostForm(key); ok {
		return &value
	}
	return nil
}

func optionalUintForm(c *gin.Context, key string) *uint {
	value, ok := c.GetPostForm(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}

func optionalUintQuery(c *gin.Context, key string) *uint {
	value, ok := c.GetQuery(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}
