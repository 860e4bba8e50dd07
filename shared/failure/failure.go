package failure

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable classification of a Failure, so callers can
// react to the business meaning of an error without parsing messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindRoomUnavailable   Kind = "room_unavailable"
	KindInvalidState      Kind = "invalid_state"
	KindIllegalTransition Kind = "illegal_transition"
	KindPrecondition      Kind = "precondition"
	KindNotFound          Kind = "not_found"
	KindTransient         Kind = "transient"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// RoomUnavailable returns the Failure for a booking that conflicts with an
// existing reservation on the same room.
func RoomUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindRoomUnavailable,
		Message: msg,
	}
}

// InvalidState returns a new Failure for an operation attempted against an
// entity whose current state forbids it.
func InvalidState(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidState,
		Message: msg,
	}
}

// IllegalTransition returns a new Failure for a state-machine transition
// that is not in the transition table.
func IllegalTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindIllegalTransition,
		Message: msg,
	}
}

// Precondition returns a new Failure for an operation whose precondition on
// another entity does not hold.
func Precondition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindPrecondition,
		Message: msg,
	}
}

// Transient returns a new Failure for a persistence or network fault that is
// safe to retry.
func Transient(msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindTransient,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidState,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
