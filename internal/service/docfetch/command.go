package docfetch

import (
	"context"
	"fmt"

	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/domain/platform"
	"github.com/oshokin/bundle-tools/internal/logger"
)

// Options contains the input parameters for the document fetch workflow.
type Options struct {
	// ConfigPath is an optional path to a settings file overriding the
	// built-in docs location, user agent and timeout.
	ConfigPath string
	// Platform selects which platform's document to fetch.
	Platform string
	// TargetDir is the existing directory README.txt is written into.
	TargetDir string
}

// Run executes the document fetch workflow: it resolves the platform in
// the registry, downloads its document and renders it as README.txt in
// the target directory. An already existing README.txt is left untouched.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "bundle-docfetch")
	ctx = logger.WithKV(ctx, "platform", opts.Platform)

	if !platform.IsKnown(opts.Platform) {
		return fmt.Errorf("%q: %w", opts.Platform, platform.ErrUnknownPlatform)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err = NewFetcher(cfg).Ensure(ctx, opts.Platform, opts.TargetDir); err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}

	logger.InfoKV(ctx, "Document fetch completed", "target_dir", opts.TargetDir)

	return nil
}
