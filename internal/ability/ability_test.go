package ability

import (
	"editorial/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(id uint) *uint { return &id }

func publishedArticle() *models.Article {
	return &models.Article{ID: 1, Status: models.StatusPublished}
}

func TestGuestReadsPublishedOnly(t *testing.T) {
	guest := models.Guest()

	assert.True(t, Can(guest, ActionRead, SubjectArticle, publishedArticle()))
	assert.True(t, Can(guest, ActionRead, SubjectAuthor, nil))
	assert.True(t, Can(guest, ActionRead, SubjectJournal, nil))
	assert.True(t, Can(guest, ActionRead, SubjectCategory, nil))

	draft := &models.Article{ID: 2, Status: models.StatusCreated}
	assert.False(t, Can(guest, ActionRead, SubjectArticle, draft))
	assert.False(t, Can(guest, ActionCreate, SubjectArticle, nil))
	assert.False(t, Can(guest, ActionUpdate, SubjectArticle, publishedArticle()))
}

func TestAdminIsAbsolute(t *testing.T) {
	admin := models.Actor{Role: models.RoleAdmin}

	draft := &models.Article{ID: 2, Status: models.StatusCreated}
	assert.True(t, Can(admin, ActionRead, SubjectArticle, draft))
	assert.True(t, Can(admin, ActionUpdate, SubjectArticle, draft))
	assert.True(t, Can(admin, ActionDelete, SubjectArticle, draft))
	assert.True(t, Can(admin, ActionCreate, SubjectCensor, nil))
}

func TestAuthorRules(t *testing.T) {
	author := models.Actor{Role: models.RoleAuthor, PersonID: ptr(4)}

	assert.True(t, Can(author, ActionCreate, SubjectArticle, nil))

	own := &models.Article{ID: 3, Status: models.StatusCreated, Authors: []models.Author{{ID: 4}}}
	other := &models.Article{ID: 5, Status: models.StatusCreated, Authors: []models.Author{{ID: 9}}}
	assert.True(t, Can(author, ActionRead, SubjectArticle, own))
	assert.False(t, Can(author, ActionRead, SubjectArticle, other))

	ownPerson := &models.Author{ID: 4}
	otherPerson := &models.Author{ID: 9}
	assert.True(t, Can(author, ActionUpdate, SubjectAuthor, ownPerson))
	assert.False(t, Can(author, ActionUpdate, SubjectAuthor, otherPerson))

	// A linked profile replaces the bootstrap grant.
	assert.False(t, Can(author, ActionCreate, SubjectAuthor, nil))
}

func TestAuthorWithoutPersonBootstraps(t *testing.T) {
	author := models.Actor{Role: models.RoleAuthor}

	assert.True(t, Can(author, ActionCreate, SubjectAuthor, nil))
	assert.True(t, Can(author, ActionCreate, SubjectArticle, nil))

	own := &models.Article{ID: 3, Authors: []models.Author{{ID: 4}}}
	assert.False(t, Can(author, ActionRead, SubjectArticle, own))
}

func TestCensorRules(t *testing.T) {
	censor := models.Actor{Role: models.RoleCensor, PersonID: ptr(5), IsApproved: true}

	assigned := &models.Article{ID: 7, Status: models.StatusToReview, CensorID: ptr(5)}
	reviewed := &models.Article{ID: 8, Status: models.StatusRejectedByCensor, CensorID: ptr(5)}
	foreign := &models.Article{ID: 9, Status: models.StatusToReview, CensorID: ptr(6)}

	assert.True(t, Can(censor, ActionRead, SubjectArticle, assigned))
	assert.True(t, Can(censor, ActionRead, SubjectArticle, reviewed))
	assert.True(t, Can(censor, ActionUpdate, SubjectArticle, assigned))

	// Update rights end the moment the article leaves to_review.
	assert.False(t, Can(censor, ActionUpdate, SubjectArticle, reviewed))
	assert.False(t, Can(censor, ActionRead, SubjectArticle, foreign))
	assert.False(t, Can(censor, ActionUpdate, SubjectArticle, foreign))
}

func TestUnapprovedCensorHasNoArticleRights(t *testing.T) {
	censor := models.Actor{Role: models.RoleCensor, PersonID: ptr(5), IsApproved: false}

	assigned := &models.Article{ID: 7, Status: models.StatusToReview, CensorID: ptr(5)}
	assert.False(t, Can(censor, ActionUpdate, SubjectArticle, assigned))
	assert.False(t, Can(censor, ActionRead, SubjectArticle, assigned))

	// The universal published-read rule still applies.
	assert.True(t, Can(censor, ActionRead, SubjectArticle, publishedArticle()))
}

func TestCensorWithoutPersonHasNoArticleRights(t *testing.T) {
	censor := models.Actor{Role: models.RoleCensor, IsApproved: true}

	assigned := &models.Article{ID: 7, Status: models.StatusToReview, CensorID: ptr(5)}
	assert.False(t, Can(censor, ActionUpdate, SubjectArticle, assigned))
	assert.False(t, Can(censor, ActionRead, SubjectArticle, assigned))
}

func TestClassLevelChecks(t *testing.T) {
	author := models.Actor{Role: models.RoleAuthor, PersonID: ptr(4)}
	guest := models.Guest()

	// Instance-conditioned rules satisfy a class-level check: some article
	// could match.
	assert.True(t, Can(author, ActionRead, SubjectArticle, nil))
	assert.True(t, Can(guest, ActionRead, SubjectArticle, nil))
	assert.False(t, Can(guest, ActionUpdate, SubjectArticle, nil))
}
