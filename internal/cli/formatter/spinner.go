package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a "thinking" line on w until stopped.
type Spinner struct {
	w    io.Writer
	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewSpinner creates a spinner that draws on w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		w:    w,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(s.w, "\r%s", FormatThinking(spinnerFrames[i%len(spinnerFrames)]))
			select {
			case <-s.stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop ends the animation and clears the line. Safe to call twice.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// Think shows the spinner on w for d, then clears it. A non-positive d
// returns immediately without drawing.
func Think(w io.Writer, d time.Duration) {
	if d <= 0 {
		return
	}
	s := NewSpinner(w)
	s.Start()
	time.Sleep(d)
	s.Stop()
}
