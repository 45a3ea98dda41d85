package models

import "strings"

const (
	MsgUsernameRequired     = "Username must be provided."
	MsgUsernameTaken        = "Username is already taken."
	MsgPasswordRequired     = "Password must be provided."
	MsgPasswordTooLong      = "Password must be at most 72 bytes."
	MsgTitleRequired        = "Title must be provided."
	MsgInstructionsTooShort = "Instructions must be at least 50 characters long."
)

// ValidationError carries one or more human-readable messages for a rejected write.
type ValidationError struct {
	Messages []string
}

func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
