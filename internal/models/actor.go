package models

// Role of an acting user. Identity and sessions are handled by an external
// collaborator; this core only consumes the resolved actor.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleAuthor Role = "author"
	RoleCensor Role = "censor"
	RoleAdmin  Role = "admin"
)

// Actor is the authenticated (or guest) entity attempting an action. Authors
// and censors may carry a linked person record; censors additionally carry an
// approval flag granted by the editorial board.
type Actor struct {
	Role       Role  `json:"role"`
	PersonID   *uint `json:"person_id,omitempty"`
	IsApproved bool  `json:"is_approved,omitempty"`
}

// Guest is the actor used for unauthenticated requests.
func Guest() Actor {
	return Actor{Role: RoleGuest}
}

// HasPerson reports whether the actor has a linked author or censor record.
func (a Actor) HasPerson() bool {
	return a.PersonID != nil
}
