package analytics

import (
	"errors"
	"testing"
)

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("2024-01-01", "2024-01-31"); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateRange("2024-01-01", "2024-01-01"); err != nil {
		t.Fatalf("one-day range rejected: %v", err)
	}
	if err := ValidateRange("2024-02-01", "2024-01-01"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err=%v want ErrInvalidRange", err)
	}
	if err := ValidateRange("", "2024-01-01"); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("err=%v want ErrMissingParameter", err)
	}
	if err := ValidateRange("2024-1-1", "2024-01-31"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err=%v want ErrInvalidDate", err)
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-06-15"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if err := ValidateDate(""); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("err=%v want ErrMissingParameter", err)
	}
	if err := ValidateDate("15/06/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err=%v want ErrInvalidDate", err)
	}
	if err := ValidateDate("2024-13-40"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err=%v want ErrInvalidDate", err)
	}
}
