package responder

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardener/internal/knowledge"
)

// Source records which pass produced a result.
type Source string

const (
	SourceKnowledge Source = "knowledge"

	// SourceSynonym is never produced: the synonym pass re-tests the same
	// keys as the primary scan, so it cannot find a match the first pass
	// missed. It is kept so the source label set stays stable.
	SourceSynonym Source = "synonym"

	SourceFallback Source = "fallback"
)

// Meta is the verdict, score and tags shown under an answer.
type Meta struct {
	Verdict knowledge.Verdict
	Score   float64
	Tags    []string
}

// ScoreText formats the score with two decimals.
func (m Meta) ScoreText() string {
	return fmt.Sprintf("%.2f", m.Score)
}

// TagsText joins tags with ", ".
func (m Meta) TagsText() string {
	return strings.Join(m.Tags, ", ")
}

// String renders the meta line, e.g.
// "Вердикт: РЕКОМЕНДОВАНО • Оценка: 0.88 • Теги: метафора, экосистема".
func (m Meta) String() string {
	return fmt.Sprintf("Вердикт: %s • Оценка: %s • Теги: %s", m.Verdict.Label(), m.ScoreText(), m.TagsText())
}

// Result is the outcome of resolving one question. It is owned by the caller.
type Result struct {
	Answer string
	Meta   Meta
	Source Source
	// Key is the matched knowledge key; empty for fallback answers.
	Key string
}
