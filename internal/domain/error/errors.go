package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized logging
const (
	// 4xxx - Client errors
	CodeMissingInput        = 4001
	CodeInsufficientPoints  = 4002
	CodeInvalidRewardCost   = 4003
	CodeConstraintViolation = 4005
	CodeUnauthenticated     = 4010
	CodeOutOfRange          = 4030
	CodeUserNotFound        = 4040
	CodePlaceNotFound       = 4041
	CodeRewardNotFound      = 4042
	CodeAlreadyCheckedIn    = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingInput is returned when a required request field is absent
	ErrMissingInput = errors.New("missing required input")

	// ErrUnauthenticated is returned when the bearer token is missing or rejected
	ErrUnauthenticated = errors.New("invalid or expired token")

	// ErrOutOfRange is returned when a check-in attempt is outside the place radius
	ErrOutOfRange = errors.New("too far from place")

	// ErrAlreadyCheckedIn is returned when the user already checked in today
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrInsufficientPoints is returned when a redemption exceeds the user's balance
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrInvalidRewardCost is returned when a catalog row carries a non-positive cost
	ErrInvalidRewardCost = errors.New("invalid reward cost")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrPlaceNotFound is returned when the requested place doesn't exist
	ErrPlaceNotFound = errors.New("place not found")

	// ErrRewardNotFound is returned when the requested reward doesn't exist
	ErrRewardNotFound = errors.New("reward not found")

	// ErrDuplicateUser is returned when a user row for the identity already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingInput):
		return CodeMissingInput
	case errors.Is(err, ErrInsufficientPoints):
		return CodeInsufficientPoints
	case errors.Is(err, ErrInvalidRewardCost):
		return CodeInvalidRewardCost
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrAlreadyCheckedIn):
		return CodeAlreadyCheckedIn
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPlaceNotFound):
		return CodePlaceNotFound
	case errors.Is(err, ErrRewardNotFound):
		return CodeRewardNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// OutOfRangeError reports a check-in attempt outside the allowed radius.
// The message is shown verbatim to the caller, so it carries the rounded
// measured distance the way the client expects it.
type OutOfRangeError struct {
	DistanceMeters int
	RadiusMeters   int
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Too far. You are ~%dm away (need within %dm).",
		e.DistanceMeters, e.RadiusMeters)
}

// Is checks if the target error is an ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *OutOfRangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "out_of_range",
		"distance_meters": e.DistanceMeters,
		"radius_meters":   e.RadiusMeters,
		"error_code":      CodeOutOfRange,
	}
}

// NewOutOfRangeError creates a new detailed out-of-range error
func NewOutOfRangeError(distanceMeters, radiusMeters int) error {
	return &OutOfRangeError{
		DistanceMeters: distanceMeters,
		RadiusMeters:   radiusMeters,
	}
}

// InsufficientPointsError provides detailed error information for a
// redemption that exceeds the user's balance.
type InsufficientPointsError struct {
	UserID    uint64
	Required  int
	Available int
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("Not enough points. Need %d, you have %d.",
		e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_points",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(userID uint64, required, available int) error {
	return &InsufficientPointsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// IsOutOfRangeError checks if the error is a radius violation
func IsOutOfRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsAlreadyCheckedInError checks if the error is a duplicate daily check-in
func IsAlreadyCheckedInError(err error) bool {
	return errors.Is(err, ErrAlreadyCheckedIn)
}

// IsInsufficientPointsError checks if the error is related to insufficient points
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsUnauthenticatedError checks if the error is an authentication failure
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlaceNotFound) ||
		errors.Is(err, ErrRewardNotFound)
}
