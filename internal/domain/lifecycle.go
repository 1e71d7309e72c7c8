package domain

import "fmt"

// Status is the lifecycle state of a transaction group.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Permissions is what a caller may do with a transaction in a given status.
// Both terminal states forbid everything; permissions are derived from the
// status so they can never drift out of sync with it.
type Permissions struct {
	Status     Status
	CanEdit    bool
	CanDelete  bool
	CanConfirm bool
}

// IsValidStatus reports whether s is a known lifecycle status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// DefaultStatus returns the status newly created transactions start in.
func DefaultStatus() Status {
	return StatusDraft
}

// normalizeStatus maps an absent or unrecognized status to draft.
func normalizeStatus(s Status) Status {
	if !IsValidStatus(s) {
		return StatusDraft
	}
	return s
}

// GetPermissions derives edit/delete/confirm permissions from a status.
// An empty or unrecognized status is treated as draft.
func GetPermissions(s Status) Permissions {
	s = normalizeStatus(s)

	editable := s == StatusDraft

	return Permissions{
		Status:     s,
		CanEdit:    editable,
		CanDelete:  editable,
		CanConfirm: editable,
	}
}

// IsValidStatusTransition reports whether from→to is an allowed transition.
// Only draft→confirmed and draft→cancelled exist; terminal states have no
// outgoing transitions, and no-op pairs are rejected.
func IsValidStatusTransition(from, to Status) bool {
	if from != StatusDraft {
		return false
	}
	return to == StatusConfirmed || to == StatusCancelled
}

// AvailableTransitions lists the statuses reachable from s.
func AvailableTransitions(s Status) []Status {
	if normalizeStatus(s) == StatusDraft {
		return []Status{StatusConfirmed, StatusCancelled}
	}
	return []Status{}
}

// IsFinalStatus reports whether s is terminal.
func IsFinalStatus(s Status) bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// IsEditable reports whether a transaction in status s may be modified.
func IsEditable(s Status) bool {
	return normalizeStatus(s) == StatusDraft
}

// StatusPriority returns a total order over statuses for stable sorting of
// mixed-status lists. It carries no business meaning.
func StatusPriority(s Status) int {
	switch normalizeStatus(s) {
	case StatusDraft:
		return 1
	case StatusConfirmed:
		return 2
	default:
		return 3
	}
}

// StatusChangeMessage returns a human-readable message for a status change
// attempt, including the two rejected terminal-state combinations.
func StatusChangeMessage(from, to Status) string {
	switch {
	case from == StatusDraft && to == StatusConfirmed:
		return "transaction confirmed"
	case from == StatusDraft && to == StatusCancelled:
		return "transaction cancelled"
	case from == StatusConfirmed && to == StatusCancelled:
		return "a confirmed transaction cannot be cancelled"
	case from == StatusCancelled && to == StatusConfirmed:
		return "a cancelled transaction cannot be confirmed"
	default:
		return fmt.Sprintf("status changed from %s to %s", from, to)
	}
}
