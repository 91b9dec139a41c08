package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"attendancehub/internal/domain"
)

var (
	emailRegexp        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	alphanumericRegexp = regexp.MustCompile(`^[A-Za-z0-9]*$`)
	eventIDRegexp      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	freeTextRegexp     = regexp.MustCompile(`^[A-Za-z0-9.,\s]*$`)
	eventTimeRegexp    = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01]) ([01]\d|2[0-3]):[0-5]\d$`)
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// asInvalidInput folds store constraint violations into ErrInvalidInput.
func asInvalidInput(err error) error {
	if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidReference) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return err
}
