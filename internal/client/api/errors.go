package api

import "fmt"

// APIError is a non-success HTTP status from the service. Message carries
// the service-provided "message" field when the error body was parseable
// JSON; Raw keeps the body text either way.
type APIError struct {
	Status  int
	Message string
	Raw     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// MissingFieldError is a success response that lacks a field required to
// advance the workflow, e.g. "uuid" on upload or "id" on item creation. It
// is surfaced as a distinct warning rather than a generic failure.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response has no %q field", e.Field)
}
