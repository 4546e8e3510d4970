package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the scheduler.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "CPU scheduling simulator",
		Long:  "os-scheduler simulates FCFS, SJF, priority, round robin and multilevel queue scheduling over synthetic workloads.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = config.GetSchedulerConfig()
			}

			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(level), format)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
	)

	return root
}
