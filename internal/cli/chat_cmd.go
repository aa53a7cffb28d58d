package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardener/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Диалог с Садоводом",
		Long: `Диалог с Садоводом.

В терминале открывается интерактивный экран; при перенаправленном вводе
читается по одному вопросу на строку.

Команды: /suggest, /concepts, /quit (/exit, /q).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, app)
		},
	}
}

func runChat(cmd *cobra.Command, app *App) error {
	r, err := app.mustResponder()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !app.interactive() {
		return runChatLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), r, app.Config.ThinkDelay)
	}

	p := tea.NewProgram(newChatModel(ctx, r, app.Config.ThinkDelay),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

// runChatLines is the REPL used when stdin is not a terminal. The thinking
// delay is rendered as a spinner on out.
func runChatLines(ctx context.Context, in io.Reader, out io.Writer, r Resolver, delay time.Duration) error {
	set := r.Knowledge()
	fmt.Fprint(out, formatter.FormatChatWelcome(set.Len()))

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, chatPrompt)
		line, err := readPromptLine(reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "/quit", "/exit", "/q":
			return nil
		case "/concepts":
			fmt.Fprintln(out, formatter.FormatConceptList(set.Entries()))
			continue
		case "/suggest":
			fmt.Fprintln(out, formatter.FormatSuggestions(set.Suggestions()))
			continue
		}

		res := r.Resolve(ctx, input)
		formatter.Think(out, delay)
		fmt.Fprint(out, formatter.FormatPlainAnswer(res))
	}
}
