package knowledge

import (
	"fmt"
	"strings"
)

// Verdict is the categorical recommendation attached to every answer.
type Verdict string

const (
	VerdictHighlyRecommended Verdict = "HIGHLY_RECOMMENDED"
	VerdictRecommended       Verdict = "RECOMMENDED"
	VerdictUnderReview       Verdict = "UNDER_REVIEW"
)

var verdictLabels = map[Verdict]string{
	VerdictHighlyRecommended: "ВЫСОКО РЕКОМЕНДОВАНО",
	VerdictRecommended:       "РЕКОМЕНДОВАНО",
	VerdictUnderReview:       "ПРИНЯТО К РАССМОТРЕНИЮ",
}

// Label returns the display form shown in the meta line.
func (v Verdict) Label() string {
	if l, ok := verdictLabels[v]; ok {
		return l
	}
	return string(v)
}

// Valid reports whether v is one of the known verdicts.
func (v Verdict) Valid() bool {
	_, ok := verdictLabels[v]
	return ok
}

func (v Verdict) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown verdict %q", string(v))
	}
	return []byte(v), nil
}

// UnmarshalText accepts either the code ("RECOMMENDED") or the display
// label ("РЕКОМЕНДОВАНО"), case-insensitively.
func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, err := ParseVerdict(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVerdict resolves a verdict code or label.
func ParseVerdict(s string) (Verdict, error) {
	s = strings.TrimSpace(s)
	for v, label := range verdictLabels {
		if strings.EqualFold(s, string(v)) || strings.EqualFold(s, label) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown verdict %q", s)
}

// VerdictForScore derives a verdict by thresholding a score that has
// already been rounded to two decimals.
func VerdictForScore(score float64) Verdict {
	switch {
	case score > 0.90:
		return VerdictHighlyRecommended
	case score > 0.80:
		return VerdictRecommended
	default:
		return VerdictUnderReview
	}
}
