package reservation

import "fmt"

// ValidationError covers malformed or missing input: date/time format,
// required fields, status enum. Fields optionally keys messages by the
// offending field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError covers an absent pro, service or reservation.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError covers a slot outside declared availability or already booked.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// AuthorizationError covers an identity mismatch on owner-scoped listings.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func missingFields(fields map[string]string) error {
	return &ValidationError{Message: "missing required fields", Fields: fields}
}
