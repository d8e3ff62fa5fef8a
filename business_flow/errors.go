// Package businessflow contains the core business logic and use cases for the catalog
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Website-related errors
	ErrWebsiteNotFound    = errors.New("website not found")
	ErrWebsiteNotApproved = errors.New("website is not approved")
	ErrWebsiteSlugTaken   = errors.New("website slug already exists")
	ErrWebsiteURLRequired = errors.New("website url is required")

	// Category-related errors
	ErrCategoryNotFound = errors.New("category not found")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)

// BusinessError represents a business logic error with additional context
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsWebsiteNotFound(err error) bool {
	return errors.Is(err, ErrWebsiteNotFound)
}

func IsWebsiteNotApproved(err error) bool {
	return errors.Is(err, ErrWebsiteNotApproved)
}

func IsWebsiteSlugTaken(err error) bool {
	return errors.Is(err, ErrWebsiteSlugTaken)
}

func IsCategoryNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
