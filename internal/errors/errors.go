package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RosterShapeError is returned when a submitted roster does not contain
// exactly the required number of players.
type RosterShapeError struct {
	Want int
	Got  int
}

func (e *RosterShapeError) Error() string {
	return fmt.Sprintf("roster must contain exactly %d players, got %d", e.Want, e.Got)
}

// RosterFieldError is returned when a single roster entry carries a missing
// or invalid field. Index is the zero-based position in the submitted list.
type RosterFieldError struct {
	Index   int
	Field   string
	Message string
}

func (e *RosterFieldError) Error() string {
	return fmt.Sprintf("player %d: %s - %s", e.Index, e.Field, e.Message)
}

// UploadError represents a blob store failure during an image upload
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("upload failed: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// PersistenceError represents a store failure that survived the internal retry
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound  = &NotFoundError{Entity: "player"}
	ErrFixtureNotFound = &NotFoundError{Entity: "fixture"}
	ErrResultNotFound  = &NotFoundError{Entity: "result"}
)

// Already Exists Errors
var (
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrResultExists = &AlreadyExistsError{Entity: "result", Context: "for this fixture"}
)

// Upload Errors
var (
	ErrMissingFile   = errors.New("file upload expected but absent")
	ErrUploadTimeout = errors.New("image upload timed out")
)

// Business Logic Errors
var (
	ErrInvalidSecretKey = errors.New("invalid or missing team secret key")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRosterViolation checks if an error is a roster shape or field error
func IsRosterViolation(err error) bool {
	var shapeErr *RosterShapeError
	var fieldErr *RosterFieldError
	return errors.As(err, &shapeErr) || errors.As(err, &fieldErr)
}

// IsUpload checks if an error is an UploadError
func IsUpload(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUploadError creates a new UploadError wrapping the underlying cause
func NewUploadError(message string, err error) error {
	return &UploadError{Message: message, Err: err}
}

// NewPersistenceError creates a new PersistenceError for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
