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
	"github.com/oshokin/bundle-tools/internal/service/docfetch"
	"github.com/oshokin/bundle-tools/internal/version"
)

var errUnknownLogLevel = errors.New("unknown log level")

var (
	// configPath is the optional path to the settings file.
	configPath string

	// logLevel controls logger verbosity.
	logLevel string

	// rootCmd represents the base command for fetching platform documentation.
	rootCmd = &cobra.Command{
		Use:   "bundle-docfetch <platform> [target-dir]",
		Short: "Download a platform's documentation as README.txt",
		Long: `Downloads the platform's documentation from the docs site and writes it
as README.txt into the target directory (current directory by default).
MDX front-matter is stripped, relative links are expanded to absolute
documentation URLs and a footer pointing at the platform's page is
appended. An existing README.txt is left untouched.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if err := applyLogLevel(); err != nil {
				return err
			}

			targetDir := "."
			if len(args) > 1 {
				targetDir = args[1]
			}

			options := &docfetch.Options{
				ConfigPath: configPath,
				Platform:   args[0],
				TargetDir:  targetDir,
			}

			return docfetch.Run(ctx, options)
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
