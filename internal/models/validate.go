package models

import "fmt"

// Violation codes.
const (
	CodeRequired         = "required"
	CodeMissing          = "missing"
	CodeInvalid          = "invalid"
	CodeDuplicateTag     = "duplicate_tag"
	CodeCapacityExceeded = "capacity_exceeded"
	CodeLength           = "length"
)

// Violation is one broken invariant, attributed to a specific field so the
// caller can re-present it next to the offending input.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validate checks the full proposed state of the article against the
// lifecycle invariants and returns every violation found. Which attachments
// are mandatory depends only on the target status:
//
//	status              base files  review  reject reason
//	created             yes         no      no
//	to_review           yes         no      no
//	reviewed            yes         yes     no
//	rejected_by_censor  yes         yes     yes
//	approved            yes         no      no
//	rejected            no          no      no
//	published           yes         no      no
func (a *Article) Validate() []Violation {
	var violations []Violation

	if a.Title == "" {
		violations = append(violations, Violation{
			Field: "title", Code: CodeRequired, Message: "title must not be empty",
		})
	}
	if !a.Status.Valid() {
		violations = append(violations, Violation{
			Field: "status", Code: CodeInvalid, Message: fmt.Sprintf("unknown status %d", a.Status),
		})
	}
	if n := len(a.Authors); n < MinAuthors || n > MaxAuthors {
		violations = append(violations, Violation{
			Field: "authors", Code: CodeLength,
			Message: fmt.Sprintf("author count must be between %d and %d, got %d", MinAuthors, MaxAuthors, n),
		})
	}
	if len(a.Attachments) > MaxAttachments {
		violations = append(violations, Violation{
			Field: "data_files", Code: CodeCapacityExceeded,
			Message: fmt.Sprintf("at most %d attachments allowed, got %d", MaxAttachments, len(a.Attachments)),
		})
	}

	seen := make(map[string]bool, len(a.Attachments))
	for _, att := range a.Attachments {
		if seen[att.Tag] {
			violations = append(violations, Violation{
				Field: att.Tag, Code: CodeDuplicateTag,
				Message: fmt.Sprintf("more than one %q attachment", att.Tag),
			})
		}
		seen[att.Tag] = true
	}

	if a.Status.RequiresBaseFiles() {
		for _, tag := range BaseFileTags {
			if !seen[tag] {
				violations = append(violations, Violation{
					Field: tag, Code: CodeMissing, Message: fmt.Sprintf("%s attachment is missing", tag),
				})
			}
		}
	}
	if a.Status.RequiresReview() && !seen[ReviewFileTag] {
		violations = append(violations, Violation{
			Field: ReviewFileTag, Code: CodeMissing, Message: "review attachment is missing",
		})
	}
	if a.Status.RequiresRejectReason() && a.RejectReason == "" {
		violations = append(violations, Violation{
			Field: "reject_reason", Code: CodeRequired, Message: "reject reason must be given",
		})
	}

	return violations
}
