package adapter

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrInvalidWeekday    = errors.New("invalid first day of week")
)

// invalidDateError returns an invalid date error with a custom error
// message, which unwraps to ErrInvalidDate.
func invalidDateError(value string) error {
	return fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// unsupportedLocaleError returns an unsupported locale error with a custom
// error message, which unwraps to ErrUnsupportedLocale.
func unsupportedLocaleError(locale string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
}
