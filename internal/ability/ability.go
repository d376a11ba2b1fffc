// Package ability decides whether an actor may perform an action on a record.
// The full permission rule set lives in one ordered list so it stays
// auditable in a single place.
package ability

import "editorial/internal/models"

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject names a resource class.
type Subject string

const (
	SubjectArticle  Subject = "article"
	SubjectAuthor   Subject = "author"
	SubjectCensor   Subject = "censor"
	SubjectJournal  Subject = "journal"
	SubjectCategory Subject = "category"
)

// rule is one grant: it applies when the role predicate accepts the actor,
// for one action on one subject, optionally narrowed to matching instances.
// A nil instance predicate grants at class level. A rule with an instance
// predicate still satisfies a class-level check (record == nil), since some
// instance could match.
type rule struct {
	when     func(models.Actor) bool
	action   Action
	subject  Subject
	instance func(models.Actor, any) bool
}

func anyone(models.Actor) bool { return true }

func isAuthor(a models.Actor) bool { return a.Role == models.RoleAuthor }

func isAuthorWithPerson(a models.Actor) bool { return isAuthor(a) && a.HasPerson() }

func isAuthorWithoutPerson(a models.Actor) bool { return isAuthor(a) && !a.HasPerson() }

func isActiveCensor(a models.Actor) bool {
	return a.Role == models.RoleCensor && a.IsApproved && a.HasPerson()
}

func asArticle(record any) (*models.Article, bool) {
	art, ok := record.(*models.Article)
	return art, ok && art != nil
}

// rules is evaluated in order; the admin short-circuit in Can precedes it.
var rules = []rule{
	{when: anyone, action: ActionRead, subject: SubjectAuthor},
	{when: anyone, action: ActionRead, subject: SubjectJournal},
	{when: anyone, action: ActionRead, subject: SubjectCategory},
	{when: anyone, action: ActionRead, subject: SubjectArticle,
		instance: func(_ models.Actor, record any) bool {
			art, ok := asArticle(record)
			return ok && art.Status == models.StatusPublished
		}},

	{when: isAuthor, action: ActionUpdate, subject: SubjectAuthor,
		instance: func(actor models.Actor, record any) bool {
			author, ok := record.(*models.Author)
			return ok && author != nil && actor.HasPerson() && author.ID == *actor.PersonID
		}},
	{when: isAuthor, action: ActionCreate, subject: SubjectArticle},
	{when: isAuthorWithPerson, action: ActionRead, subject: SubjectArticle,
		instance: func(actor models.Actor, record any) bool {
			art, ok := asArticle(record)
			return ok && art.HasAuthor(*actor.PersonID)
		}},
	// Bootstrapping a profile is the prerequisite to authoring.
	{when: isAuthorWithoutPerson, action: ActionCreate, subject: SubjectAuthor},

	{when: isActiveCensor, action: ActionRead, subject: SubjectArticle,
		instance: func(actor models.Actor, record any) bool {
			art, ok := asArticle(record)
			return ok && art.CensorID != nil && *art.CensorID == *actor.PersonID
		}},
	// ToReview is the only state in which a censor may mutate a record; once
	// the review lands the censor loses update rights on it.
	{when: isActiveCensor, action: ActionUpdate, subject: SubjectArticle,
		instance: func(actor models.Actor, record any) bool {
			art, ok := asArticle(record)
			return ok && art.CensorID != nil && *art.CensorID == *actor.PersonID &&
				art.Status == models.StatusToReview
		}},
}

// Can reports whether the actor may perform the action on the record.
// Pass record == nil for a class-level check ("may this actor create an
// article at all"); instance predicates are then treated as satisfiable.
// Admin is absolute and bypasses the rule list entirely.
func Can(actor models.Actor, action Action, subject Subject, record any) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	for _, r := range rules {
		if r.action != action || r.subject != subject || !r.when(actor) {
			continue
		}
		if r.instance == nil || record == nil || r.instance(actor, record) {
			return true
		}
	}
	return false
}
