package seatmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLayout      = errors.New("layout has no rows")
	ErrEmptyRow         = errors.New("layout row has no seats")
	ErrInvalidRow       = errors.New("row index must be positive")
	ErrDuplicateRow     = errors.New("layout row is defined twice")
	ErrInvalidSelection = errors.New("invalid seat selection")
	ErrSeatsUnavailable = errors.New("seats are not available")
)

type InvalidReason string

const (
	ReasonEmpty     InvalidReason = "empty"
	ReasonDuplicate InvalidReason = "duplicate"
	ReasonUnknown   InvalidReason = "unknown"
)

// InvalidSelectionError reports a request that can never succeed as submitted.
type InvalidSelectionError struct {
	Reason InvalidReason
	Codes  []string
}

func (e *InvalidSelectionError) Error() string {
	if len(e.Codes) == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidSelection, e.Reason)
	}
	return fmt.Sprintf("%s: %s seats %s", ErrInvalidSelection, e.Reason, strings.Join(e.Codes, ", "))
}

func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// ConflictError lists the requested seats that were not free at decision time.
type ConflictError struct {
	Codes []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSeatsUnavailable, strings.Join(e.Codes, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSeatsUnavailable
}
