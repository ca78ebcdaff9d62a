package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upload errors
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Per-resource not-found errors, all unwrapping to ErrResourceNotFound so the
// error middleware only needs one branch.
var (
	ErrPublicationNotFound = &CustomError{Err: ErrResourceNotFound, Message: "publication not found"}
	ErrBookNotFound        = &CustomError{Err: ErrResourceNotFound, Message: "book not found"}
	ErrProjectNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "project not found"}
	ErrPatentNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "patent not found"}
	ErrAwardNotFound       = &CustomError{Err: ErrResourceNotFound, Message: "award not found"}
	ErrPhDStudentNotFound  = &CustomError{Err: ErrResourceNotFound, Message: "phd student not found"}
	ErrGalleryItemNotFound = &CustomError{Err: ErrResourceNotFound, Message: "gallery item not found"}
	ErrAdminUserNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "admin user not found"}

	ErrContactInfoNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "contact info not found"}
	ErrContactMessageNotFound = &CustomError{Err: ErrResourceNotFound, Message: "contact message not found"}
	ErrFacultyProfileNotFound = &CustomError{Err: ErrResourceNotFound, Message: "faculty profile not found"}
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
