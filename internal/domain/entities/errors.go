package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord is returned when a quiz is built without a required field.
	ErrInvalidRecord = errors.New("invalid quiz record")
	// ErrUnknownVariant is returned when a type tag or ordinal has no registered variant.
	ErrUnknownVariant = errors.New("unknown quiz variant")
	// ErrIllegalState is returned when an operation needs state the record does not hold.
	ErrIllegalState = errors.New("illegal quiz state")
)

// InvalidRecordError names the field that failed construction.
type InvalidRecordError struct {
	Type   QuizType
	Field  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s quiz: %s %s", e.Type, e.Field, e.Reason)
}

func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// UnknownVariantError carries the tag or ordinal that could not be resolved.
type UnknownVariantError struct {
	Tag     string
	Ordinal int
	ByTag   bool
}

func (e *UnknownVariantError) Error() string {
	if e.ByTag {
		return fmt.Sprintf("unknown quiz variant %q", e.Tag)
	}
	return fmt.Sprintf("unknown quiz variant ordinal %d", e.Ordinal)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// IllegalStateError reports an operation invoked before its state was populated.
type IllegalStateError struct {
	Op     string
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

func invalid(t QuizType, field, reason string) error {
	return &InvalidRecordError{Type: t, Field: field, Reason: reason}
}
