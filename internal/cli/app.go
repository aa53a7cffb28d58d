package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gardener/internal/config"
	"github.com/alexanderramin/gardener/internal/knowledge"
	"github.com/alexanderramin/gardener/internal/metrics"
	"github.com/alexanderramin/gardener/internal/responder"
)

// Resolver is the responder surface used by the shells.
type Resolver interface {
	Resolve(ctx context.Context, question string) responder.Result
	Knowledge() knowledge.Set
}

// App holds what the commands share. Responder is built from Config on
// first use unless a caller has set it already.
type App struct {
	Config    config.Config
	Responder Resolver
	Metrics   *metrics.Metrics

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// LogOutput receives resolution logs when Config.LogCalls is set.
	LogOutput io.Writer
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// ensureResponder loads the knowledge set and wires the responder with
// its observers.
func (a *App) ensureResponder() error {
	if a.Responder != nil {
		return nil
	}

	set := knowledge.Default()
	if a.Config.KnowledgeFile != "" {
		loaded, err := knowledge.LoadFile(a.Config.KnowledgeFile)
		if err != nil {
			return err
		}
		set = loaded
	}

	random := responder.NewTimeSeededRandom()
	if a.Config.Seed != 0 {
		random = responder.NewSeededRandom(a.Config.Seed)
	}

	if a.Metrics == nil {
		a.Metrics = metrics.New()
	}
	observers := responder.MultiObserver{a.Metrics}
	if a.Config.LogCalls {
		w := a.LogOutput
		if w == nil {
			w = os.Stderr
		}
		observers = append(observers, responder.NewLogObserver(w))
	}

	a.Responder = responder.New(set,
		responder.WithRandom(random),
		responder.WithObserver(observers),
	)
	return nil
}

func (a *App) mustResponder() (Resolver, error) {
	if err := a.ensureResponder(); err != nil {
		return nil, fmt.Errorf("preparing knowledge: %w", err)
	}
	return a.Responder, nil
}
