package custom_errors

import "errors"

// Validation errors, surfaced as 400 Bad Request.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNoUpdateParameters = errors.New("no update parameters provided")
	ErrDescriptionTooLong = errors.New("description cannot be over 1,000 characters in length")
	ErrUnknownTagGroup    = errors.New("tag group could not be found or does not exist")
	ErrInvalidPostID      = errors.New("invalid post id")
	ErrInheritanceCycle   = errors.New("tag inheritance would create a cycle")
)

// Authentication and authorization errors.
var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrInsufficientScope = errors.New("insufficient scope")
	ErrNotTagOwner       = errors.New("user must be the tag owner or a mod to edit a tag")
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrPostNotFound = errors.New("post does not exist or you don't have access to it")
	ErrUserNotFound = errors.New("user not found")
	ErrNoUserTags   = errors.New("user does not exist or does not own any tags")
)

// Conflict errors, surfaced as 409.
var (
	ErrTagAlreadyExists     = errors.New("a tag with that name already exists")
	ErrDuplicateInheritance = errors.New("inheritance edge already exists")
)

// Infrastructure errors.
var (
	ErrDatabaseQuery        = errors.New("database query failed")
	ErrDatabaseScan         = errors.New("database scan failed")
	ErrExternalServiceError = errors.New("external service error")
	ErrCacheMiss            = errors.New("cache miss")
	ErrCounterUpdateFailed  = errors.New("counter update failed")
	ErrInternalServiceError = errors.New("internal service error")
)
