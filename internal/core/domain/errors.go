// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks errors caused by invalid entity data.
var ErrValidation = errors.New("validation failed")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
