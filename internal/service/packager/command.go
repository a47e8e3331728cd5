package packager

import (
	"context"
	"fmt"

	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/domain/platform"
	"github.com/oshokin/bundle-tools/internal/logger"
)

// Options contains the input parameters for the packaging workflow.
type Options struct {
	// ConfigPath is an optional path to a settings file overriding the
	// built-in docs location, user agent and timeout.
	ConfigPath string
	// Platform selects the platform whose document and extra items apply.
	Platform string
	// BuildDir is the staging directory holding the compiled binary.
	BuildDir string
	// BinaryName is the name of the application binary inside BuildDir.
	BinaryName string
	// ArchiveName is the name of the archive produced inside BuildDir.
	ArchiveName string
}

// Run executes the packaging workflow: it validates the platform, stages
// the license and README next to the binary and writes all of them into a
// fresh archive together with the platform's extra items.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "bundle-packager")
	ctx = logger.WithKV(ctx, "platform", opts.Platform)

	if !platform.IsKnown(opts.Platform) {
		return fmt.Errorf("%q: %w", opts.Platform, platform.ErrUnknownPlatform)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err = newBuilder(cfg, opts).run(ctx); err != nil {
		return fmt.Errorf("build package: %w", err)
	}

	logger.InfoKV(ctx, "Packaging completed", "archive", opts.ArchiveName)

	return nil
}
