package training

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is matched by every MissingKeyError
	ErrMissingKey = errors.New("missing key")
	// ErrInvalidField is matched by every FieldTypeError
	ErrInvalidField = errors.New("invalid field")
	// ErrUnknownRequirementType is returned by Requirement.Validate
	ErrUnknownRequirementType = errors.New("unknown requirement type")
)

// MissingKeyError reports a required key absent from a metadata mapping
type MissingKeyError struct {
	Record string
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing key %q", e.Record, e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// FieldTypeError reports a key whose value has the wrong shape
type FieldTypeError struct {
	Record string
	Key    string
	Want   string
	Got    any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: key %q must be %s, got %T", e.Record, e.Key, e.Want, e.Got)
}

func (e *FieldTypeError) Is(target error) bool {
	return target == ErrInvalidField
}
