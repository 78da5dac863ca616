package user

import "fmt"

// NotFoundError indicates that no master auth user exists for the username
// an administrative operation targeted.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User not found with username %s", e.Username)
}

// GroupRelationshipError is the authorization veto raised when an acting
// administrator may not maintain the target user. The message wording is
// surfaced to callers and must stay stable.
type GroupRelationshipError struct {
	Username string
	Reason   string
}

func (e *GroupRelationshipError) Error() string {
	return fmt.Sprintf("Unable to maintain user: %s with reason: %s", e.Username, e.Reason)
}
