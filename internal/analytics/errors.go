package analytics

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures are detected before any store query runs; no partial
// aggregation is ever returned on invalid input.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange     = errors.New("startDate cannot be after endDate")
	ErrInvalidMetric    = errors.New("invalid metric")
)

const dateLayout = "2006-01-02"

// ValidateDate checks that s is a well-formed YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if s == "" {
		return ErrMissingParameter
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// ValidateRange checks both bounds and their ordering. Dates are compared as
// calendar-day labels; equal bounds are a valid one-day range.
func ValidateRange(startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		return fmt.Errorf("%w: startDate and endDate are required", ErrMissingParameter)
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, endDate)
	}
	if start.After(end) {
		return ErrInvalidRange
	}
	return nil
}
