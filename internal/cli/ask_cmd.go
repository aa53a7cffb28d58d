package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardener/internal/cli/formatter"
	"github.com/alexanderramin/gardener/internal/responder"
)

type askJSON struct {
	Answer   string   `json:"answer"`
	Source   string   `json:"source"`
	Key      string   `json:"key,omitempty"`
	Verdict  string   `json:"verdict"`
	Score    string   `json:"score"`
	Tags     []string `json:"tags"`
	MetaLine string   `json:"meta_line"`
}

func newAskCmd(app *App) *cobra.Command {
	var asJSON, plain bool

	cmd := &cobra.Command{
		Use:   `ask "<вопрос>"`,
		Short: "Задать один вопрос",
		Long: `Задать один вопрос и получить ответ с вердиктом.

Examples:
  gardener ask "Что такое сад?"
  gardener ask --plain "Почему архив?"
  gardener ask --json "xyz"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := responder.ValidateQuestion(strings.Join(args, " "))
			if err != nil {
				app.Metrics.IncrementRejected("cli")
				return fmt.Errorf("вопрос не может быть пустым: %w", err)
			}

			r, err := app.mustResponder()
			if err != nil {
				return err
			}
			res := r.Resolve(cmd.Context(), question)

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(askJSON{
					Answer:   res.Answer,
					Source:   string(res.Source),
					Key:      res.Key,
					Verdict:  string(res.Meta.Verdict),
					Score:    res.Meta.ScoreText(),
					Tags:     res.Meta.Tags,
					MetaLine: res.Meta.String(),
				})
			case plain:
				fmt.Fprint(out, formatter.FormatPlainAnswer(res))
			default:
				fmt.Fprintln(out, formatter.FormatAnswer(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "print answer and meta line without decoration")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")
	return cmd
}
