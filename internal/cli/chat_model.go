package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/gardener/internal/cli/formatter"
	"github.com/alexanderramin/gardener/internal/responder"
)

const chatPrompt = "садовод> "

// replyMsg delivers a resolved answer once the thinking delay elapses.
type replyMsg struct {
	result responder.Result
}

// chatModel is the bubbletea transcript for "gardener chat". While a
// reply is pending the spinner replaces the prompt and Enter is ignored.
type chatModel struct {
	ctx      context.Context
	resolver Resolver
	delay    time.Duration
	tick     func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	input   textinput.Model
	spinner spinner.Model

	messages []string
	pending  bool
	quitting bool
}

func newChatModel(ctx context.Context, r Resolver, delay time.Duration) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)

	return &chatModel{
		ctx:      ctx,
		resolver: r,
		delay:    delay,
		tick:     tea.Tick,
		input:    ti,
		spinner:  sp,
		messages: []string{formatter.FormatChatWelcome(r.Knowledge().Len())},
	}
}

func (c *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (c *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			c.quitting = true
			return c, tea.Quit
		case tea.KeyEnter:
			if c.pending {
				return c, nil
			}
			input := strings.TrimSpace(c.input.Value())
			c.input.Reset()
			if input == "" {
				return c, nil
			}
			return c.handleInput(input)
		}

	case replyMsg:
		c.pending = false
		c.messages = append(c.messages, formatter.FormatAnswer(msg.result))
		return c, nil

	case spinner.TickMsg:
		if !c.pending {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *chatModel) View() string {
	if c.quitting {
		return ""
	}

	var b strings.Builder
	for _, m := range c.messages {
		b.WriteString(m)
		b.WriteString("\n")
	}

	if c.pending {
		b.WriteString(formatter.FormatThinking(c.spinner.View()))
		return b.String()
	}

	b.WriteString(formatter.StylePurple.Render("садовод") + formatter.Dim("> "))
	b.WriteString(c.input.View())
	return b.String()
}

func (c *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q":
		c.quitting = true
		return c, tea.Quit
	case "/concepts":
		c.messages = append(c.messages, formatter.FormatConceptList(c.resolver.Knowledge().Entries()))
		return c, nil
	case "/suggest":
		c.messages = append(c.messages, formatter.FormatSuggestions(c.resolver.Knowledge().Suggestions()))
		return c, nil
	}

	c.messages = append(c.messages, formatter.FormatUserMessage(input))
	c.pending = true
	res := c.resolver.Resolve(c.ctx, input)

	return c, tea.Batch(c.spinner.Tick, c.replyAfter(res))
}

func (c *chatModel) replyAfter(res responder.Result) tea.Cmd {
	if c.delay <= 0 {
		return func() tea.Msg { return replyMsg{result: res} }
	}
	return c.tick(c.delay, func(time.Time) tea.Msg { return replyMsg{result: res} })
}
