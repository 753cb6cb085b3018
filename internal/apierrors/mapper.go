package apierrors

import (
	"errors"

	"hunt-server/internal/domainerr"
)

// MapError converts processor errors to APIErrors.
//
// An APIError is returned as-is. Errors carrying a domainerr kind map to the status for
// that kind, using the domain message when one was set. Anything else becomes a
// sanitized InternalError.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch domainerr.KindOf(err) {
	case domainerr.ErrInvalidArgument:
		return BadRequest(CodeInvalidArgument, messageOf(err, "Invalid argument"))
	case domainerr.ErrInvalidState:
		return Conflict(CodeInvalidState, messageOf(err, "Operation not allowed in the current state"))
	case domainerr.ErrNotFound:
		return NotFound(CodeNotFound, messageOf(err, "Resource not found"))
	case domainerr.ErrCapacityExceeded:
		return Conflict(CodeCapacityExceeded, messageOf(err, "No capacity left"))
	case domainerr.ErrPolicyConflict:
		return Conflict(CodePolicyConflict, messageOf(err, "Policy conflict"))
	case domainerr.ErrUnavailable:
		return ServiceUnavailable(err)
	default:
		return InternalError(err)
	}
}

// messageOf returns the message of the outermost domain error that has one.
func messageOf(err error, fallback string) string {
	var de *domainerr.Error
	for errors.As(err, &de) {
		if de.Message != "" {
			return de.Message
		}
		if de.Err == nil {
			break
		}
		err = de.Err
	}
	return fallback
}
