package query

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOption marks option sets with unrecognized keys or malformed values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnknownDimension marks group_by/order_by entries the catalog cannot resolve.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrExecutor marks failures of the storage/query layer.
	ErrExecutor = errors.New("query executor failed")
)

// InvalidOptionError lists the offending option names.
type InvalidOptionError struct {
	Names  []string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unrecognized"
	}
	return fmt.Sprintf("invalid option(s) %s: %s", strings.Join(e.Names, ", "), reason)
}

func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// UnknownDimensionError carries the name that failed to resolve.
type UnknownDimensionError struct {
	Name string
}

func (e *UnknownDimensionError) Error() string {
	return fmt.Sprintf("unknown dimension %q", e.Name)
}

func (e *UnknownDimensionError) Is(target error) bool {
	return target == ErrUnknownDimension
}
