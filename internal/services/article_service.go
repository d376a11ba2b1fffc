package services

import (
	"editorial/internal/ability"
	"editorial/internal/models"
	"editorial/internal/notification"
	"editorial/internal/repository"
	"editorial/internal/storage"
	"errors"
	"log"
)

// FileUpload is one uploaded file as received from the transport layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f *FileUpload) empty() bool {
	return f == nil || len(f.Data) == 0
}

// CensorInput are the reviewer details supplied with a review assignment.
type CensorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Degree    string `json:"degree"`
	Post      string `json:"post"`
}

// SubmitArticleInput is the payload of a new submission. Each base file is
// individually optional here; absence surfaces as a validation violation at
// the state machine, not as a transport error.
type SubmitArticleInput struct {
	Title      string
	CategoryID *uint
	AuthorIDs  []uint
	Files      map[string]FileUpload
	HasReview  bool
	Review     *FileUpload
	Censor     CensorInput
}

// UpdateArticleInput carries the fields of an in-place update; nil means
// "leave unchanged". A non-empty Review replaces the review attachment.
type UpdateArticleInput struct {
	Title        *string
	Status       *models.Status
	RejectReason *string
	CategoryID   *uint
	Review       *FileUpload
}

// ListFilter selects articles. An AuthorID filter returns every article the
// given person authored with no read-authorization scoping, matching the
// long-standing behavior of the original system (see DESIGN.md).
type ListFilter struct {
	AuthorID *uint
	Status   *models.Status
	CensorID *uint
}

type ArticleService struct {
	articles    repository.ArticleRepository
	authors     repository.AuthorRepository
	censors     repository.CensorRepository
	attachments repository.AttachmentRepository
	blobs       storage.BlobStore
	events      notification.Publisher
}

func NewArticleService(
	articles repository.ArticleRepository,
	authors repository.AuthorRepository,
	censors repository.CensorRepository,
	attachments repository.AttachmentRepository,
	blobs storage.BlobStore,
	events notification.Publisher,
) *ArticleService {
	return &ArticleService{
		articles:    articles,
		authors:     authors,
		censors:     censors,
		attachments: attachments,
		blobs:       blobs,
		events:      events,
	}
}

// SubmitNewArticle assembles attachments from the payload, gates the request
// on the permission rules and commits the article through validation. The
// acting author is always added to the author set. With HasReview the
// submission carries a review file and new reviewer details and enters the
// lifecycle as reviewed; otherwise as created.
func (s *ArticleService) SubmitNewArticle(actor models.Actor, in SubmitArticleInput) (*models.Article, error) {
	if !actor.HasPerson() {
		return nil, ErrPrerequisiteMissing
	}
	if !ability.Can(actor, ability.ActionCreate, ability.SubjectArticle, nil) {
		return nil, ErrUnauthorized
	}

	authorIDs := appendUnique(in.AuthorIDs, *actor.PersonID)
	authors, err := s.authors.FindByIDs(authorIDs)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var attachments []models.Attachment
	for _, tag := range models.BaseFileTags {
		file, ok := in.Files[tag]
		if !ok || file.empty() {
			continue
		}
		att, err := s.upload(file, tag)
		if err != nil {
			s.discardAll(attachments)
			return nil, err
		}
		attachments = append(attachments, att)
	}

	status := models.StatusCreated
	var censor *models.Censor
	invalidReview := false
	if in.HasReview {
		if in.Review.empty() {
			invalidReview = true
		} else {
			att, err := s.upload(*in.Review, models.ReviewFileTag)
			if err != nil {
				s.discardAll(attachments)
				return nil, err
			}
			attachments = append(attachments, att)
		}
		censor = &models.Censor{
			FirstName: in.Censor.FirstName,
			LastName:  in.Censor.LastName,
			Degree:    in.Censor.Degree,
			Post:      in.Censor.Post,
		}
		if err := s.censors.Create(censor); err != nil {
			s.discardAll(attachments)
			return nil, err
		}
		status = models.StatusReviewed
	}

	article := &models.Article{
		Title:       in.Title,
		Status:      status,
		CategoryID:  in.CategoryID,
		Authors:     authors,
		Attachments: attachments,
	}
	if censor != nil {
		article.CensorID = &censor.ID
	}

	violations := article.Validate()
	if invalidReview && !hasFieldViolation(violations, models.ReviewFileTag) {
		violations = append(violations, models.Violation{
			Field: models.ReviewFileTag, Code: models.CodeMissing, Message: "review attachment is missing",
		})
	}
	if len(violations) > 0 {
		s.rollbackSubmission(attachments, censor)
		return nil, &ValidationError{Violations: violations}
	}

	if err := s.articles.Save(article, nil); err != nil {
		s.rollbackSubmission(attachments, censor)
		return nil, err
	}

	s.afterCommit(article)
	return article, nil
}

// UpdateArticle merges the payload onto the stored article and commits it
// through validation. Authorization is evaluated against the freshly loaded
// record, so a censor whose article already left to_review is rejected even
// if an earlier read allowed it. A failed validation leaves the stored
// article untouched.
func (s *ArticleService) UpdateArticle(actor models.Actor, id uint, in UpdateArticleInput) (*models.Article, error) {
	article, err := s.articles.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !ability.Can(actor, ability.ActionUpdate, ability.SubjectArticle, article) {
		return nil, ErrUnauthorized
	}

	var detached []models.Attachment
	var newAttachment *models.Attachment
	if !in.Review.empty() {
		att, err := s.upload(*in.Review, models.ReviewFileTag)
		if err != nil {
			return nil, err
		}
		newAttachment = &att
		if old := article.AttachmentByTag(models.ReviewFileTag); old != nil {
			detached = append(detached, *old)
			article.Attachments = removeAttachment(article.Attachments, old.ID)
		}
		article.Attachments = append(article.Attachments, att)
	}

	if in.Title != nil {
		article.Title = *in.Title
	}
	if in.Status != nil {
		article.Status = *in.Status
	}
	if in.RejectReason != nil {
		article.RejectReason = *in.RejectReason
	}
	if in.CategoryID != nil {
		article.CategoryID = in.CategoryID
	}

	if violations := article.Validate(); len(violations) > 0 {
		if newAttachment != nil {
			s.discardAll([]models.Attachment{*newAttachment})
		}
		return nil, &ValidationError{Violations: violations}
	}

	if err := s.articles.Save(article, detached); err != nil {
		if newAttachment != nil {
			s.discardAll([]models.Attachment{*newAttachment})
		}
		return nil, err
	}

	s.afterCommit(article)
	return article, nil
}

// GetArticle loads one article, gated by the read rules.
func (s *ArticleService) GetArticle(actor models.Actor, id uint) (*models.Article, error) {
	article, err := s.articles.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !ability.Can(actor, ability.ActionRead, ability.SubjectArticle, article) {
		return nil, ErrUnauthorized
	}
	return article, nil
}

// ListArticles returns articles matching the filter. Without any filter the
// result is scoped to what the actor may read.
func (s *ArticleService) ListArticles(actor models.Actor, filter ListFilter) ([]models.Article, error) {
	if filter.AuthorID != nil {
		return s.articles.FindByAuthorID(*filter.AuthorID)
	}
	if filter.Status != nil || filter.CensorID != nil {
		return s.articles.FindByFilters(filter.Status, filter.CensorID)
	}

	all, err := s.articles.FindAll()
	if err != nil {
		return nil, err
	}
	visible := make([]models.Article, 0, len(all))
	for i := range all {
		if ability.Can(actor, ability.ActionRead, ability.SubjectArticle, &all[i]) {
			visible = append(visible, all[i])
		}
	}
	return visible, nil
}

func (s *ArticleService) upload(file FileUpload, tag string) (models.Attachment, error) {
	ref, err := s.blobs.Store(file.Data, file.ContentType)
	if err != nil {
		return models.Attachment{}, err
	}
	return models.Attachment{Tag: tag, Filename: file.Filename, BlobRef: ref}, nil
}

// afterCommit runs the post-commit effects of a successful save: the
// rejected-article prune, the orphan sweep and the status-change event.
// None of these may fail the request; the sweep retries on the next save.
func (s *ArticleService) afterCommit(article *models.Article) {
	if article.Status.PrunesAttachments() && len(article.Attachments) > 1 {
		var kept []models.Attachment
		var detached []models.Attachment
		for _, att := range article.Attachments {
			if att.Tag == models.ReviewFileTag {
				kept = append(kept, att)
			} else {
				detached = append(detached, att)
			}
		}
		article.Attachments = kept
		if err := s.articles.Save(article, detached); err != nil {
			log.Printf("Failed to prune attachments of article %d: %v", article.ID, err)
		}
	}

	if _, err := s.attachments.ReclaimOrphans(); err != nil {
		log.Printf("Failed to reclaim orphaned attachments: %v", err)
	}

	if err := s.events.ArticleStatusChanged(article); err != nil {
		log.Printf("Failed to publish status change for article %d: %v", article.ID, err)
	}
}

// rollbackSubmission destroys everything a failed submission created: the
// stored blobs of this attempt and the implicitly created reviewer record.
func (s *ArticleService) rollbackSubmission(attachments []models.Attachment, censor *models.Censor) {
	s.discardAll(attachments)
	if censor != nil && censor.ID != 0 {
		if err := s.censors.Delete(censor.ID); err != nil {
			log.Printf("Failed to delete censor %d of invalid submission: %v", censor.ID, err)
		}
	}
}

func (s *ArticleService) discardAll(attachments []models.Attachment) {
	for i := range attachments {
		if err := s.blobs.Discard(attachments[i].BlobRef); err != nil {
			log.Printf("Failed to discard blob %s: %v", attachments[i].BlobRef, err)
		}
	}
}

func hasFieldViolation(violations []models.Violation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func appendUnique(ids []uint, id uint) []uint {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeAttachment(attachments []models.Attachment, id uint) []models.Attachment {
	kept := attachments[:0]
	for _, att := range attachments {
		if att.ID != id {
			kept = append(kept, att)
		}
	}
	return kept
}
