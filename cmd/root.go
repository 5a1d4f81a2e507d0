package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/swapisort/categorize"
	"github.com/s0up4200/swapisort/config"
	"github.com/s0up4200/swapisort/filter"
	"github.com/s0up4200/swapisort/store"
	"github.com/s0up4200/swapisort/swapi"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	swapiClient *swapi.Client
	fileCache   *store.FileCache

	// Command flags
	cacheFile    string
	refresh      bool
	outputFormat string
	filterExpr   string
	preset       string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "swapisort",
	Short: "Group Star Wars characters by species",
	Long: `swapisort fetches every character from the Star Wars API, caches the list
locally and prints the characters grouped by species.

Running it without arguments fetches (or loads the cached) characters,
resolves each character's species and prints one block per species.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runCategorize,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache-file", "", "character cache file (default from config: characters.json)")

	rootCmd.Flags().BoolVar(&refresh, "refresh", false, "ignore the cache file and fetch characters again")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "o", "", "output format: text, tree or json")
	rootCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "only categorize characters matching this expression")
	rootCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	// Add subcommands
	rootCmd.AddCommand(pingCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	// Override cache file from command line if specified
	if cmd.Flags().Changed("cache-file") {
		cfg.Cache.File = cacheFile
	}

	swapiClient, err = swapi.NewClient(cfg.SWAPI.URL, logger,
		swapi.WithTimeout(cfg.SWAPI.Timeout),
		swapi.WithUserAgent(cfg.SWAPI.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create SWAPI client: %w", err)
	}

	fileCache = store.NewFileCache(cfg.Cache.File, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
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

	runID := uuid.NewString()

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Str("run_id", runID).Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Str("run_id", runID).Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runCategorize(cmd *cobra.Command, args []string) error {
	format, err := categorize.ParseFormat(firstNonEmpty(outputFormat, cfg.Output.Format))
	if err != nil {
		return err
	}

	// Determine filter expression
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	var charFilter *filter.ExprFilter
	if expr != "" {
		logger.Info().Str("filter", expr).Msg("Filtering characters")
		charFilter, err = filter.CompileFilter(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	// Progress lines go to stderr when stdout carries JSON
	progress := io.Writer(cmd.OutOrStdout())
	if format == categorize.FormatJSON {
		progress = cmd.ErrOrStderr()
	}

	p := &pipeline{
		source:    swapiClient,
		fetcher:   swapiClient,
		cache:     fileCache,
		filter:    charFilter,
		formatter: categorize.NewConsoleFormatter(cfg.Logging.Color && isTerminal(os.Stdout)),
		format:    format,
		refresh:   refresh,
		progress:  progress,
		logger:    logger,
	}

	return p.run(cmd.Context(), cmd.OutOrStdout())
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[strings.ToLower(preset)]; ok {
			return presetFilter.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to SWAPI",
	Long:  `Test the connection to the configured Star Wars API and report the cache status.`,
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to SWAPI at %s...\n", swapiClient.BaseURL())

	if err := swapiClient.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	exists, err := fileCache.Exists()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nCache file: %s (%s)\n", fileCache.Path(), existsToStatus(exists))

	return nil
}

func existsToStatus(b bool) string {
	if b {
		return "present"
	}
	return "missing"
}
