package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"airbnb-dashboard/config"
	"airbnb-dashboard/models"
	"airbnb-dashboard/services"
	"airbnb-dashboard/storage"
	"airbnb-dashboard/utils"
)

var (
	// Persistent flags, overriding the environment when set
	flagDataset  string
	flagSource   string
	flagAddr     string
	flagLogLevel string

	cfg    *config.Config
	logger *utils.Logger
)

var rootCmd = &cobra.Command{
	Use:   "airbnb-dashboard",
	Short: "Interactive dashboard over an Airbnb listings dataset",
	Long: `airbnb-dashboard loads a listings CSV (or its PostgreSQL copy) and serves
three views over it: a filterable explorer, map and host insights, and a
per-night price estimator.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		loadConfig(cmd)
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "path to the listings CSV (overrides DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "dataset source: csv or postgres (overrides DATA_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
}

func loadConfig(cmd *cobra.Command) {
	cfg = config.Load()

	f := cmd.Flags()
	if f.Changed("dataset") {
		cfg.DatasetPath = flagDataset
	}
	if f.Changed("source") {
		cfg.DataSource = flagSource
	}
	if f.Changed("addr") {
		cfg.HTTPAddr = flagAddr
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	logger = utils.NewLoggerWithLevel(os.Stdout, cfg.LogLevel)
}

func retryConfig() *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   time.Second,
		Logger:      logger,
	}
}

// loadListings reads the dataset from the configured source. Any failure is
// fatal for the calling command.
func loadListings(ctx context.Context) ([]*models.Listing, error) {
	var src storage.ListingSource

	switch cfg.DataSource {
	case config.SourceCSV:
		logger.Info("[load] Reading %s", cfg.DatasetPath)
		src = storage.NewCSVSource(cfg.DatasetPath)
	case config.SourcePostgres:
		logger.Info("[load] Reading listings table from %s:%s/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
		store, err := storage.NewPostgresStore(ctx, cfg.DSN(), retryConfig())
		if err != nil {
			return nil, err
		}
		defer store.Close()
		src = store
	default:
		return nil, fmt.Errorf("unknown data source %q (want %s or %s)", cfg.DataSource, config.SourceCSV, config.SourcePostgres)
	}

	listings, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("[load] %d listings loaded", len(listings))
	return listings, nil
}

func newDashboard(listings []*models.Listing) *services.Dashboard {
	return services.NewDashboard(logger, listings, services.DashboardOptions{
		TopHosts:       cfg.TopHosts,
		PriceCap:       cfg.InsightsPriceCap,
		Locale:         cfg.DisplayLocale,
		CurrencySymbol: cfg.CurrencySymbol,
	})
}
