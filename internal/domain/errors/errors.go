package errors

import (
	"net/http"

	"eventhub/internal/errors"
)

// AppError is an error that knows how it should be rendered to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine readable code, e.g. "ALREADY_REGISTERED"
	Message() string   // Client facing message
	Details() string   // Optional extra context
}

// BaseError is the default AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches two BaseErrors by error code so that WithDetails copies
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Generic taxonomy
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrInvalidID        = NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid identifier format", "")
	ErrUnauthorized     = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrForbidden        = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrNotFound         = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	ErrConflict         = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict", "")
	ErrStoreUnavailable = NewBaseError(http.StatusInternalServerError, "STORE_UNAVAILABLE", "Storage is unavailable, please retry later", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")

	// Users
	ErrUserNotFound       = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrUserAlreadyExists  = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered", "")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password", "")

	// Events
	ErrEventNotFound     = NewBaseError(http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found", "")
	ErrEventTitleMissing = NewBaseError(http.StatusBadRequest, "EVENT_TITLE_REQUIRED", "Event title is required", "")
	ErrEventSlugTaken    = NewBaseError(http.StatusConflict, "EVENT_SLUG_TAKEN", "Event slug is already in use", "")
	ErrNotEventOrganizer = NewBaseError(http.StatusForbidden, "NOT_EVENT_ORGANIZER", "Only the event organizer can do this", "")

	// Organizations
	ErrOrganizationNotFound  = NewBaseError(http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found", "")
	ErrOrganizationSlugTaken = NewBaseError(http.StatusConflict, "ORGANIZATION_SLUG_TAKEN", "Organization slug is already in use", "")
	ErrNotOrganizationAdmin  = NewBaseError(http.StatusForbidden, "NOT_ORGANIZATION_ADMIN", "Only organization admins can do this", "")
	ErrNotOrganizationMember = NewBaseError(http.StatusForbidden, "NOT_ORGANIZATION_MEMBER", "Only organization members can do this", "")

	// Registrations
	ErrAlreadyRegistered    = NewBaseError(http.StatusConflict, "ALREADY_REGISTERED", "User is already registered for this event", "")
	ErrRegistrationNotFound = NewBaseError(http.StatusNotFound, "REGISTRATION_NOT_FOUND", "Registration not found", "")
	ErrEventFull            = NewBaseError(http.StatusConflict, "EVENT_FULL", "Event has reached its capacity", "")
	ErrInvalidCheckInCode   = NewBaseError(http.StatusBadRequest, "INVALID_CHECKIN_CODE", "Check-in code is invalid", "")

	// Connections
	ErrSelfConnection          = NewBaseError(http.StatusBadRequest, "SELF_CONNECTION", "Cannot connect to yourself", "")
	ErrConnectionExists        = NewBaseError(http.StatusBadRequest, "CONNECTION_EXISTS", "A connection between these users already exists", "")
	ErrConnectionNotFound      = NewBaseError(http.StatusNotFound, "CONNECTION_NOT_FOUND", "Connection not found", "")
	ErrInvalidConnectionStatus = NewBaseError(http.StatusBadRequest, "INVALID_CONNECTION_STATUS", "Invalid connection status", "")
	ErrNotConnectionParty      = NewBaseError(http.StatusForbidden, "NOT_CONNECTION_PARTY", "You are not part of this connection", "")

	// Subscriptions
	ErrSubscriptionNotFound = NewBaseError(http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "Subscription not found", "")

	// Badges
	ErrBadgeNotFound       = NewBaseError(http.StatusNotFound, "BADGE_NOT_FOUND", "Badge not found", "")
	ErrBadgeAlreadyClaimed = NewBaseError(http.StatusConflict, "BADGE_ALREADY_CLAIMED", "Badge already claimed", "")
	ErrBadgeNotEligible    = NewBaseError(http.StatusForbidden, "BADGE_NOT_ELIGIBLE", "You must be checked in to the event to claim this badge", "")
	ErrBadgeEventRequired  = NewBaseError(http.StatusBadRequest, "BADGE_EVENT_REQUIRED", "Participant badges must reference an event", "")

	// Feedback
	ErrInvalidRating         = NewBaseError(http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5", "")
	ErrFeedbackNotRegistered = NewBaseError(http.StatusForbidden, "NOT_REGISTERED", "Only registered attendees can leave feedback", "")
	ErrFeedbackAlreadyExists = NewBaseError(http.StatusConflict, "FEEDBACK_ALREADY_SUBMITTED", "Feedback already submitted for this event", "")

	// Notifications
	ErrNotificationNotFound = NewBaseError(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found", "")

	// Devices
	ErrDeviceNotFound = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found", "")
)

// DatabaseExecuteError represents a failed store operation.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
