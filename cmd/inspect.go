package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/teambuilder-cli/internal/application"
	"github.com/bnema/teambuilder-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <roster-file>",
		Short: "Summarize a roster and report references to unknown people",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			app, err := wireApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			source, err := app.rosterSource(args[0])
			if err != nil {
				return err
			}

			summary, err := app.service.InspectRoster(cmd.Context(), source)
			if err != nil {
				return err
			}

			return writeSummaryOutput(cmd, summary, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeSummaryOutput(cmd *cobra.Command, summary application.RosterSummary, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	_, _ = fmt.Fprintf(out, "people: %d\n", summary.People)
	_, _ = fmt.Fprintf(out, "with preferences: %d\n", summary.WithPreferences)
	_, _ = fmt.Fprintf(out, "with avoidances: %d\n", summary.WithAvoidances)
	_, err := fmt.Fprintf(out, "unknown references: %d\n", len(summary.Unknown))
	for _, ref := range summary.Unknown {
		_, err = fmt.Fprintf(out, "  %s -> %s\n", sanitizeForTerminal(string(ref.Person)), sanitizeForTerminal(string(ref.Reference)))
	}

	return err
}
