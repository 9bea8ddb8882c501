package graph

import (
	"errors"

	"github.com/easyevent/api/internal/domain/entity"
)

// Error codes surfaced in the extensions block of a GraphQL error.
const (
	codeBadInput        = "BAD_USER_INPUT"
	codeConflict        = "CONFLICT"
	codeNotFound        = "NOT_FOUND"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeInternal        = "INTERNAL"
)

// opError is the single structured failure a client sees: which operation
// failed, why, and a stable machine-readable code.
type opError struct {
	op   string
	code string
	err  error
}

func newOpError(op string, err error) *opError {
	return &opError{op: op, code: codeFor(err), err: err}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		return codeBadInput
	case errors.Is(err, entity.ErrEmailTaken):
		return codeConflict
	case errors.Is(err, entity.ErrUserNotFound), errors.Is(err, entity.ErrEventNotFound):
		return codeNotFound
	case errors.Is(err, entity.ErrNoIdentity):
		return codeUnauthenticated
	default:
		return codeInternal
	}
}

func (e *opError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *opError) Unwrap() error {
	return e.err
}

// Extensions is picked up by graphql-go and serialized alongside the message.
func (e *opError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":      e.code,
		"operation": e.op,
	}
}
