package models

// Status is the position of an article in the editorial lifecycle.
type Status int

const (
	StatusCreated Status = iota
	StatusToReview
	StatusReviewed
	StatusRejectedByCensor
	StatusApproved
	StatusRejected
	StatusPublished
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusToReview:
		return "to_review"
	case StatusReviewed:
		return "reviewed"
	case StatusRejectedByCensor:
		return "rejected_by_censor"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusPublished:
		return "published"
	}
	return "unknown"
}

func (s Status) Valid() bool {
	return s >= StatusCreated && s <= StatusPublished
}

// RequiresBaseFiles reports whether the four base attachment tags must be
// present for an article in this status. Rejection may happen before the
// full materials exist, so StatusRejected is the single exemption.
func (s Status) RequiresBaseFiles() bool {
	return s != StatusRejected
}

// RequiresReview reports whether a review attachment must be present.
func (s Status) RequiresReview() bool {
	return s == StatusReviewed || s == StatusRejectedByCensor
}

// RequiresRejectReason reports whether a censor justification is mandatory.
func (s Status) RequiresRejectReason() bool {
	return s == StatusRejectedByCensor
}

// PrunesAttachments reports whether every non-review attachment is discarded
// after an article lands in this status.
func (s Status) PrunesAttachments() bool {
	return s == StatusRejected || s == StatusRejectedByCensor
}
