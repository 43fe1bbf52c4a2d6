package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/teambuilder-cli/internal/adapters/export"
	teamsrender "github.com/bnema/teambuilder-cli/internal/adapters/render/teams"
	"github.com/bnema/teambuilder-cli/internal/application"
	"github.com/bnema/teambuilder-cli/internal/config"
	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var interactiveGroupSizes = []int{3, 4}

func newFormCmd(v *viper.Viper) *cobra.Command {
	var asJSON bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   "form <roster-file>",
		Short: "Form teams from a CSV or YAML roster",
		Long:  "Form fixed-size teams from a roster. The preferences strategy honours stated preferences and restarts until every team is full and conflict-free; the skills strategy deals the strongest people out first to balance skill totals.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := promptSettings(cmd, v); err != nil {
					return err
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			app, err := wireApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runForm(cmd, app, cfg, args[0], asJSON)
		},
	}

	flags := cmd.Flags()
	flags.Int("size", config.DefaultGroupSize, "Team size")
	flags.String("strategy", string(formation.StrategyPreferences), "Formation strategy: preferences or skills")
	flags.Bool("score-floors", false, "Apply the per-size score floor (default: on for skills, off for preferences)")
	flags.Int("max-attempts", formation.DefaultMaxAttempts, "Restarts allowed before preference formation gives up")
	flags.String("output", config.DefaultOutputPath, "Team export file")
	flags.String("format", "", "Export format: csv, toml or json (default: from the output extension)")
	flags.String("metrics-file", "", "Write Prometheus metrics for this run to a textfile")
	flags.BoolVar(&asJSON, "json", false, "Render JSON output")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Prompt for team size and strategy when not given as flags")

	bindFlags(v, flags, map[string]string{
		config.KeyGroupSize:       "size",
		config.KeyStrategy:        "strategy",
		config.KeyScoreFloors:     "score-floors",
		config.KeyMaxAttempts:     "max-attempts",
		config.KeyOutputPath:      "output",
		config.KeyOutputFormat:    "format",
		config.KeyMetricsTextfile: "metrics-file",
	})

	return cmd
}

func runForm(cmd *cobra.Command, app *app, cfg config.Config, rosterPath string, asJSON bool) error {
	source, err := app.rosterSource(rosterPath)
	if err != nil {
		return err
	}

	exporter, err := app.newExporter(cfg.Output.Path, cfg.Output.Format)
	if err != nil {
		return err
	}

	command := application.FormTeamsCommand{
		Source:      source,
		SourceName:  rosterPath,
		Exporter:    exporter,
		GroupSize:   cfg.GroupSize,
		Strategy:    cfg.Strategy,
		ScoreFloors: cfg.ScoreFloors,
		MaxAttempts: cfg.MaxAttempts,
	}

	var report domain.Report
	formTeams := func(ctx context.Context) error {
		var err error
		report, err = app.service.FormTeams(ctx, command)
		return err
	}

	if asJSON {
		err = formTeams(cmd.Context())
	} else {
		err = runFormationSpinner(cmd.Context(), cmd.ErrOrStderr(), formationLabel(cfg, rosterPath), formTeams)
	}

	if cfg.Metrics.Textfile != "" {
		if metricsErr := app.recorder.WriteTextfile(cfg.Metrics.Textfile); metricsErr != nil {
			err = errors.Join(err, metricsErr)
		}
	}
	if err != nil {
		return err
	}

	return writeReportOutput(cmd, app, report, exporter.Path(), asJSON)
}

func writeReportOutput(cmd *cobra.Command, app *app, report domain.Report, exportPath string, asJSON bool) error {
	if asJSON {
		data, err := export.Encode(report, export.FormatJSON)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	rendered, err := app.teamsRenderer(report, teamsrender.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render teams: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nTeams written to %s\n", rendered, exportPath)
	return err
}

// promptSettings asks for the team size and strategy unless they were given
// as flags, and pins the answers on v.
func promptSettings(cmd *cobra.Command, v *viper.Viper) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if !cmd.Flags().Changed("size") {
		size, err := promptGroupSize(reader, out)
		if err != nil {
			return err
		}
		v.Set(config.KeyGroupSize, size)
	}

	if !cmd.Flags().Changed("strategy") {
		strategy, err := promptStrategy(reader, out)
		if err != nil {
			return err
		}
		v.Set(config.KeyStrategy, string(strategy))
	}

	return nil
}

func promptGroupSize(reader *bufio.Reader, out io.Writer) (int, error) {
	_, _ = fmt.Fprint(out, "Team size [3/4]: ")

	input, err := readLine(reader)
	if err != nil {
		return 0, fmt.Errorf("read team size: %w", err)
	}

	size, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid team size %q", input)
	}
	for _, allowed := range interactiveGroupSizes {
		if size == allowed {
			return size, nil
		}
	}

	return 0, fmt.Errorf("team size must be 3 or 4, got %d", size)
}

func promptStrategy(reader *bufio.Reader, out io.Writer) (formation.Strategy, error) {
	_, _ = fmt.Fprint(out, "Prioritize preferences or balance skills? [preferences/skills]: ")

	input, err := readLine(reader)
	if err != nil {
		return "", fmt.Errorf("read strategy: %w", err)
	}

	switch strings.ToLower(input) {
	case "", "y", "yes":
		return formation.StrategyPreferences, nil
	case "n", "no":
		return formation.StrategySkills, nil
	}

	return formation.ParseStrategy(input)
}

func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}
