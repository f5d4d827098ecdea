package domain

import "errors"

// Kind é o código estável de cada família de erro do domínio.
type Kind string

const (
	KindUnknown             Kind = "UNKNOWN"
	KindValidation          Kind = "VALIDATION"
	KindDuplicateIdentity   Kind = "DUPLICATE_IDENTITY"
	KindUnknownIdentity     Kind = "UNKNOWN_IDENTITY"
	KindAuthentication      Kind = "AUTHENTICATION"
	KindProtectedAttribute  Kind = "PROTECTED_ATTRIBUTE"
	KindRequestWorkflow     Kind = "REQUEST_WORKFLOW"
	KindRelationship        Kind = "RELATIONSHIP"
	KindBounds              Kind = "BOUNDS"
	KindInvalidFieldRequest Kind = "INVALID_FIELD_REQUEST"
	KindEmptyQueue          Kind = "EMPTY_QUEUE"
	KindShutdownBlocked     Kind = "SHUTDOWN_BLOCKED"
)

// Error is a domain failure tagged with its Kind. Sentinels are compared by identity,
// so wrapping them with %w keeps errors.Is working.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	// validação
	ErrInvalidName      = newError(KindValidation, "name cannot be empty")
	ErrInvalidEmail     = newError(KindValidation, "invalid email format")
	ErrBadDateFormat    = newError(KindValidation, "invalid date format")
	ErrDateDoesNotExist = newError(KindValidation, "date does not exist")
	ErrEmptyPost        = newError(KindValidation, "post must have at least one content line")
	ErrInvalidHashtag   = newError(KindValidation, "hashtags must start with '#'")
	ErrMessageTooLong   = newError(KindValidation, "message exceeds the maximum length")

	ErrDuplicateIdentity = newError(KindDuplicateIdentity, "a profile with this email already exists")
	ErrUnknownIdentity   = newError(KindUnknownIdentity, "profile not registered")

	// sessão
	ErrInvalidCredential    = newError(KindAuthentication, "invalid credential")
	ErrNoActiveSession      = newError(KindAuthentication, "no active session")
	ErrAlreadyAuthenticated = newError(KindAuthentication, "a session is already active")

	ErrProtectedAttribute = newError(KindProtectedAttribute, "credential is a protected attribute")

	ErrNoSuchRequest = newError(KindRequestWorkflow, "no pending connection request from this profile")
	ErrNotConnected  = newError(KindRelationship, "profiles are not connected")

	ErrNegativeIndex          = newError(KindBounds, "index cannot be negative")
	ErrPostIndexOutOfRange    = newError(KindBounds, "post index out of range")
	ErrContentIndexOutOfRange = newError(KindBounds, "content index out of range")
	ErrInvalidFieldRequest    = newError(KindInvalidFieldRequest, "invalid field request")
	ErrNoNotifications        = newError(KindEmptyQueue, "no notifications")
	ErrSessionStillActive     = newError(KindShutdownBlocked, "cannot shut down while a session is active")
)

// KindOf classifies err, walking the wrap chain. Non-domain errors are KindUnknown.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}
