package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alessio99-a/fetchbind/internal/app"
	"github.com/Alessio99-a/fetchbind/internal/config"
)

var (
	cfgFile     string
	requestName string
	prefsPath   string

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd runs the TUI when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "fetchbind",
	Short: "Bind a configured HTTP request to a live terminal view",
	Long: `fetchbind binds one configured HTTP request to a terminal view:
the request's status (idle, loading, data, error) is rendered live, it can
be re-executed manually or on a timer, and superseded in-flight requests
are cancelled so the view only ever shows the most recent result.`,
	PersistentPreRunE: initializeApp,
	RunE:              runTUI,
}

// Execute runs the CLI under the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fetchbind.yaml)")
	rootCmd.Flags().StringVarP(&requestName, "request", "r", "", "named request to bind (default from config)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default is ~/.config/fetchbind/prefs.toml)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and builds the logger.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return app.Run(cmd.Context(), app.Options{
		Config:      cfg,
		Logger:      logger,
		RequestName: requestName,
		PrefsPath:   prefsPath,
	})
}

// setupLogger configures the zerolog logger.
func setupLogger(lc config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(lc.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if lc.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !lc.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(output).With().Timestamp().Logger()
}
