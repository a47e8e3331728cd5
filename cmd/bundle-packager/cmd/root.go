package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/logger"
	"github.com/oshokin/bundle-tools/internal/service/packager"
	"github.com/oshokin/bundle-tools/internal/version"
)

var errUnknownLogLevel = errors.New("unknown log level")

var (
	// configPath is the optional path to the settings file.
	configPath string

	// logLevel controls logger verbosity.
	logLevel string

	// rootCmd represents the base command for assembling platform bundles.
	rootCmd = &cobra.Command{
		Use:   "bundle-packager <platform> <build-dir> <binary-name> <archive-name>",
		Short: "Assemble a distributable platform bundle",
		Long: `Assembles a distributable archive for the platform from the contents of
the build directory. The compiled binary must already be there; the
license and README are staged next to it when missing, a stale archive
from a previous run is removed, and the platform's extra items are
mirrored into the build directory before everything is written into a
fresh ZIP (or tar.gz, depending on the archive name).`,
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if err := applyLogLevel(); err != nil {
				return err
			}

			options := &packager.Options{
				ConfigPath:  configPath,
				Platform:    args[0],
				BuildDir:    args[1],
				BinaryName:  args[2],
				ArchiveName: args[3],
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the root command and terminates the process on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyLogLevel adjusts the global logger according to the flag value.
func applyLogLevel() error {
	level, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		return fmt.Errorf("%q: %w", logLevel, errUnknownLogLevel)
	}

	logger.SetLevel(level)

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default is "+config.DefaultConfigFilename+" when present)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info",
		"log level (debug, info, warn, error, fatal)")
}
