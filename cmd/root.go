package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/monkeylearn-go/config"
	"github.com/s0up4200/monkeylearn-go/filter"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

var (
	cfgFile string
	token   string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *monkeylearn.Client
	filters *filter.Manager

	// Shared command flags
	filterExpr string
	preset     string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "monkeylearn",
	Short: "Command line client for the MonkeyLearn text analysis API",
	Long: `monkeylearn classifies, extracts and clusters text with MonkeyLearn models
and runs pipelines. Results can be narrowed with filter expressions or presets
defined in the config file.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and runs it with ctx.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API token (overrides config and MONKEYLEARN_API_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, config.WithToken(token))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = monkeylearn.New(cfg.API.Token, logger, cfg.API.ClientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create MonkeyLearn client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterPresets(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter presets: %w", err)
	}

	logger.Debug().
		Str("base_url", client.API().BaseURL()).
		Int("presets", len(cfg.Filter.Presets)).
		Msg("Client initialized")

	return nil
}

// skipInit replaces initializeApp for commands that need neither config nor client
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !stderrIsTerminal(),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveFilter picks the --filter expression or the --preset filter, if any
func resolveFilter() (filter.CompiledFilter, error) {
	if filterExpr != "" && preset != "" {
		return nil, fmt.Errorf("--filter and --preset are mutually exclusive")
	}
	f, err := filters.Resolve(filterExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return f, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to result rows")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}
