package knowledge

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// QuestionPlaceholder marks where a fallback template takes the question.
const QuestionPlaceholder = "{question}"

// ErrInvalidKnowledge is returned when a knowledge set fails validation.
var ErrInvalidKnowledge = errors.New("invalid knowledge set")

// Entry is one canned answer keyed by a trigger phrase.
type Entry struct {
	Key     string   `json:"key"`
	Answer  string   `json:"answer"`
	Tags    []string `json:"tags"`
	Score   float64  `json:"score"`
	Verdict Verdict  `json:"verdict"`
}

func (e Entry) clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// Synonym maps a trigger phrase to the concept it stands for.
type Synonym struct {
	Trigger string `json:"trigger"`
	Target  string `json:"target"`
}

// Set is the immutable bundle a responder works against: the ordered
// knowledge base, the ordered synonym table and the fallback material.
// The zero value is empty; build one with NewSet or Default.
type Set struct {
	entries      []Entry
	synonyms     []Synonym
	templates    []string
	fallbackTags []string
}

// NewSet validates its inputs and returns a Set that owns copies of them.
// Keys and triggers are folded; their relative order is preserved.
func NewSet(entries []Entry, synonyms []Synonym, templates, fallbackTags []string) (Set, error) {
	s := Set{
		entries:      make([]Entry, len(entries)),
		synonyms:     make([]Synonym, len(synonyms)),
		templates:    slices.Clone(templates),
		fallbackTags: slices.Clone(fallbackTags),
	}
	for i, e := range entries {
		e = e.clone()
		e.Key = Fold(strings.TrimSpace(e.Key))
		s.entries[i] = e
	}
	for i, syn := range synonyms {
		syn.Trigger = Fold(strings.TrimSpace(syn.Trigger))
		s.synonyms[i] = syn
	}

	if errs := validateSet(s); len(errs) > 0 {
		return Set{}, fmt.Errorf("%w: %w", ErrInvalidKnowledge, errors.Join(errs...))
	}
	return s, nil
}

// Len is the number of knowledge entries.
func (s Set) Len() int { return len(s.entries) }

// Entries returns the knowledge base in match order.
func (s Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

// Synonyms returns the synonym table in scan order.
func (s Set) Synonyms() []Synonym { return slices.Clone(s.synonyms) }

// Templates returns the fallback templates.
func (s Set) Templates() []string { return slices.Clone(s.templates) }

// FallbackTags returns the tags attached to every fallback answer.
func (s Set) FallbackTags() []string { return slices.Clone(s.fallbackTags) }

// Template returns the i-th fallback template.
func (s Set) Template(i int) string { return s.templates[i] }

// Match returns the first entry, in base order, whose key is contained
// in folded. The caller folds the question.
func (s Set) Match(folded string) (Entry, bool) {
	for _, e := range s.entries {
		if strings.Contains(folded, e.Key) {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// Lookup finds an entry by its exact key.
func (s Set) Lookup(key string) (Entry, bool) {
	key = Fold(strings.TrimSpace(key))
	for _, e := range s.entries {
		if e.Key == key {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// Triggered returns the synonyms whose trigger occurs in folded, in table order.
func (s Set) Triggered(folded string) []Synonym {
	var hits []Synonym
	for _, syn := range s.synonyms {
		if strings.Contains(folded, syn.Trigger) {
			hits = append(hits, syn)
		}
	}
	return hits
}

// Suggestions returns one sample question per concept, in base order.
func (s Set) Suggestions() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = "Что такое " + e.Key + "?"
	}
	return out
}
