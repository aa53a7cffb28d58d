package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "gardener" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gardener",
		Short: "Садовод: ответы на вопросы о Саде",
		Long: `Садовод отвечает на вопросы по статической базе знаний Сада.
Без аргументов в терминале запускается диалог.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChat(cmd, app)
			}
			return cmd.Help()
		},
	}

	app.Config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newConceptsCmd(app),
		newServeCmd(app),
	)

	return root
}
