// Package responder resolves free-text questions against a knowledge set.
//
// Resolution order, first match wins:
//  1. every knowledge key, in base order, tested as a substring of the
//     folded question;
//  2. for each synonym trigger found in the question, the same scan again;
//  3. a randomly chosen fallback template with a random score.
//
// The synonym pass re-tests the original keys, not the synonym targets,
// so it can only succeed where the first pass already would have. The
// target is reported to the Observer and otherwise unused.
package responder

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/gardener/internal/knowledge"
)

// Fallback scores live on the hundredths grid [minFallbackCents, maxFallbackCents).
const (
	minFallbackCents = 70
	maxFallbackCents = 95
)

// Responder answers questions. It holds no mutable state beyond its
// Random and is safe for concurrent use.
type Responder struct {
	set      knowledge.Set
	random   Random
	observer Observer
	now      func() time.Time
}

// Option configures a Responder.
type Option func(*Responder)

// WithRandom injects the random source used for fallback answers.
func WithRandom(r Random) Option {
	return func(rs *Responder) {
		if r != nil {
			rs.random = r
		}
	}
}

// WithObserver attaches an observer for resolution events.
func WithObserver(o Observer) Option {
	return func(rs *Responder) {
		if o != nil {
			rs.observer = o
		}
	}
}

// New returns a Responder over set.
func New(set knowledge.Set, opts ...Option) *Responder {
	r := &Responder{
		set:      set,
		random:   NewTimeSeededRandom(),
		observer: NoopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Knowledge returns the set this responder answers from.
func (r *Responder) Knowledge() knowledge.Set { return r.set }

// Resolve answers question. It never fails.
func (r *Responder) Resolve(ctx context.Context, question string) Result {
	start := r.now()
	folded := knowledge.Fold(question)

	event := ResolutionEvent{QuestionLen: len([]rune(question)), StartedAt: start}
	result := r.resolve(question, folded, &event)

	event.Source = result.Source
	event.Key = result.Key
	event.Verdict = result.Meta.Verdict
	event.Score = result.Meta.Score
	event.Duration = r.now().Sub(start)
	r.observer.ObserveResolution(ctx, event)

	return result
}

func (r *Responder) resolve(question, folded string, event *ResolutionEvent) Result {
	if e, ok := r.set.Match(folded); ok {
		return fromEntry(e, SourceKnowledge)
	}

	for _, syn := range r.set.Triggered(folded) {
		if event.Trigger == "" {
			event.Trigger, event.Target = syn.Trigger, syn.Target
		}
		if e, ok := r.set.Match(folded); ok {
			event.Trigger, event.Target = syn.Trigger, syn.Target
			return fromEntry(e, SourceSynonym)
		}
	}

	return r.fallback(question)
}

func (r *Responder) fallback(question string) Result {
	n := len(r.set.Templates())
	answer := ""
	if n > 0 {
		tmpl := r.set.Template(r.random.IntN(n))
		answer = strings.Replace(tmpl, knowledge.QuestionPlaceholder, question, 1)
	}

	cents := minFallbackCents + r.random.IntN(maxFallbackCents-minFallbackCents)
	score := float64(cents) / 100

	return Result{
		Answer: answer,
		Meta: Meta{
			Verdict: knowledge.VerdictForScore(score),
			Score:   score,
			Tags:    r.set.FallbackTags(),
		},
		Source: SourceFallback,
	}
}

func fromEntry(e knowledge.Entry, src Source) Result {
	return Result{
		Answer: e.Answer,
		Meta: Meta{
			Verdict: e.Verdict,
			Score:   e.Score,
			Tags:    e.Tags,
		},
		Source: src,
		Key:    e.Key,
	}
}
