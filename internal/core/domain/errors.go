package domain

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing wizard failures. None of them is fatal: the user corrects the
// input and retries the action that raised it.
var (
	ErrIncompleteFields     = errors.New("incomplete fields")
	ErrTooManyTones         = errors.New("maximum of 3 tones")
	ErrInvalidImageFormat   = errors.New("image must be JPG or PNG")
	ErrImageTooLarge        = errors.New("image exceeds 8 MB")
	ErrGenerationFailure    = errors.New("campaign generation failed")
	ErrIncompleteSelection  = errors.New("select a copy and an image to continue")
	ErrInvalidField         = errors.New("invalid field")
	ErrGenerationInProgress = errors.New("campaign generation already in progress")
	ErrInvalidTransition    = errors.New("invalid step transition")
	ErrSessionNotFound      = errors.New("session not found")
)

// IncompleteFieldsError names the required fields left empty on submit.
type IncompleteFieldsError struct {
	Fields []string
}

func (e *IncompleteFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIncompleteFields, strings.Join(e.Fields, ", "))
}

func (e *IncompleteFieldsError) Is(target error) bool {
	return target == ErrIncompleteFields
}

// InvalidFieldError is a value outside the range the form accepts.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidField, e.Field, e.Reason)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
