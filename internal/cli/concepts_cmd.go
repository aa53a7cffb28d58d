package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardener/internal/cli/formatter"
)

func newConceptsCmd(app *App) *cobra.Command {
	var suggest bool

	cmd := &cobra.Command{
		Use:     "concepts",
		Aliases: []string{"kb"},
		Short:   "Показать базу знаний",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.mustResponder()
			if err != nil {
				return err
			}
			set := r.Knowledge()
			if suggest {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuggestions(set.Suggestions()))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConcepts(set.Entries()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "print sample questions instead of the table")
	return cmd
}
