package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"coffee-van/internal/codec"
	"coffee-van/internal/config"
	"coffee-van/internal/console"
	"coffee-van/internal/inventory"
	"coffee-van/internal/model"
	"coffee-van/internal/service"
	"coffee-van/internal/storage"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// flagValues holds command-line overrides for environment configuration.
type flagValues struct {
	dataFile  string
	maxVolume float64
	maxBudget float64
	logLevel  string
	logFormat string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var flags flagValues

	root := &cobra.Command{
		Use:   "coffeevan",
		Short: "Manage the cargo of a coffee delivery van",
		Long: `coffeevan is an interactive console for loading coffee products into a
van with limited volume and budget, querying the cargo, and storing it in a
';'-delimited data file (gzip-compressed when the name ends in .gz).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, in, out, errOut)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&flags.dataFile, "data-file", "", "data file path (env DATA_FILE)")
	f.Float64Var(&flags.maxVolume, "max-volume", 0, "van volume limit in ml (env VAN_MAX_VOLUME)")
	f.Float64Var(&flags.maxBudget, "max-budget", 0, "van budget limit (env VAN_MAX_BUDGET)")
	f.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	f.StringVar(&flags.logFormat, "log-format", "", "json or console (env LOG_FORMAT)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "coffeevan v%s\n", version)
		},
	})

	return root
}

// resolveConfig loads configuration from the environment, overridden by the
// flags the user set.
func resolveConfig(cmd *cobra.Command, flags flagValues) (*config.Config, error) {
	changed := cmd.Flags().Changed

	var opts []config.Option
	if changed("data-file") {
		opts = append(opts, func(c *config.Config) { c.Storage.DataFile = flags.dataFile })
	}
	if changed("max-volume") {
		opts = append(opts, func(c *config.Config) { c.Van.MaxVolume = flags.maxVolume })
	}
	if changed("max-budget") {
		opts = append(opts, func(c *config.Config) { c.Van.MaxBudget = flags.maxBudget })
	}
	if changed("log-level") {
		opts = append(opts, func(c *config.Config) { c.Logger.Level = flags.logLevel })
	}
	if changed("log-format") {
		opts = append(opts, func(c *config.Config) { c.Logger.Format = flags.logFormat })
	}

	return config.Load(opts...)
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize logger
	logger := config.NewLogger(cfg.Logger, errOut)
	logger.Info().
		Str("version", version).
		Str("data_file", cfg.Storage.DataFile).
		Float64("max_volume", cfg.Van.MaxVolume).
		Float64("max_budget", cfg.Van.MaxBudget).
		Msg("starting coffee van")

	// Wire storage, inventory and service
	c := codec.New(codec.NewLogSink(logger))
	store := storage.NewFileService(cfg.Storage.DataFile, c, logger)
	van := inventory.New(cfg.Van.MaxVolume, cfg.Van.MaxBudget)
	svc := service.NewVanService(van, store, logger)

	menu := console.NewMenu(svc, in, out, model.UUIDGenerator{}, logger)
	if err := menu.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("interrupted")
			return nil
		}
		return fmt.Errorf("console failed: %w", err)
	}

	logger.Info().Msg("coffee van stopped")
	return nil
}
