package responder

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/gardener/internal/knowledge"
)

// ResolutionEvent captures telemetry for one Resolve call.
type ResolutionEvent struct {
	QuestionLen int
	Source      Source
	Key         string
	// Trigger and Target name the synonym that opened the nested scan.
	Trigger   string
	Target    string
	Verdict   knowledge.Verdict
	Score     float64
	Duration  time.Duration
	StartedAt time.Time
}

// Observer receives resolution events.
type Observer interface {
	ObserveResolution(ctx context.Context, event ResolutionEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveResolution(context.Context, ResolutionEvent) {}

// MultiObserver fans an event out to every non-nil observer.
type MultiObserver []Observer

func (m MultiObserver) ObserveResolution(ctx context.Context, event ResolutionEvent) {
	for _, o := range m {
		if o != nil {
			o.ObserveResolution(ctx, event)
		}
	}
}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes resolution events to w.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveResolution(ctx context.Context, event ResolutionEvent) {
	attrs := make([]any, 0, 16)
	attrs = append(attrs,
		"source", string(event.Source),
		"question_len", event.QuestionLen,
		"verdict", string(event.Verdict),
		"score", event.Score,
		"duration_us", event.Duration.Microseconds(),
	)
	if event.Key != "" {
		attrs = append(attrs, "key", event.Key)
	}
	if event.Trigger != "" {
		attrs = append(attrs, "synonym", event.Trigger, "synonym_target", event.Target)
	}
	o.logger.InfoContext(ctx, "resolve", attrs...)
}
