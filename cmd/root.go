package cmd

import (
	"github.com/bnema/teambuilder-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tb",
		Short:         "Team builder (tb): form balanced student teams from a roster",
		Long:          "tb reads a roster of people with skill levels, avoid lists and preferences, and partitions it into fixed-size teams, either honouring preferences or balancing skills.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	v := viper.New()
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", "text", "Log format: text or json")
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newFormCmd(v),
		newInspectCmd(v),
	)

	return rootCmd
}
