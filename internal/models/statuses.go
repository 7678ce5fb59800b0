package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleSitter UserRole = "sitter"

	// Derived job states, recomputed from application volume
	JobStatusOpen              JobStatus = "open"
	JobStatusAcceptancePending JobStatus = "job_acceptance_pending"
	JobStatusAcceptanceDone    JobStatus = "acceptance_complete"

	// Explicit states set by owner action
	JobStatusOngoing   JobStatus = "job_ongoing"
	JobStatusComplete  JobStatus = "job_complete"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusRemoved   JobStatus = "removed"

	ApplicationStatusRejected ApplicationStatus = "rejected"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
)

// AllJobStatuses is the closed set of persistable job states.
var AllJobStatuses = []JobStatus{
	JobStatusOpen,
	JobStatusAcceptancePending,
	JobStatusAcceptanceDone,
	JobStatusOngoing,
	JobStatusComplete,
	JobStatusCancelled,
	JobStatusRemoved,
}

// Valid reports whether s is one of the enumerated job states.
func (s JobStatus) Valid() bool {
	for _, known := range AllJobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Derived reports whether s is recomputed from application counts, as
// opposed to being set by an explicit owner action.
func (s JobStatus) Derived() bool {
	switch s {
	case JobStatusOpen, JobStatusAcceptancePending, JobStatusAcceptanceDone:
		return true
	}
	return false
}

// Valid reports whether s is one of the enumerated application states.
func (s ApplicationStatus) Valid() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusAccepted
}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == UserRoleOwner || r == UserRoleSitter
}
