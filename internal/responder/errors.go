package responder

import (
	"errors"
	"strings"
)

// ErrEmptyQuestion is returned by ValidateQuestion for blank input.
var ErrEmptyQuestion = errors.New("question is empty")

// ValidateQuestion trims raw and rejects empty or whitespace-only input.
// Shells call it before Resolve; Resolve itself accepts any string.
func ValidateQuestion(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuestion
	}
	return q, nil
}
