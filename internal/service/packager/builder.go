package packager

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/bundle-tools/internal/archive"
	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/domain/platform"
	"github.com/oshokin/bundle-tools/internal/logger"
	"github.com/oshokin/bundle-tools/internal/service/docfetch"
)

const (
	// LicenseFilename is the license entry shipped inside every bundle.
	LicenseFilename = "LICENSE.txt"

	// licenseSource is the file copied into build directories that lack a
	// license, relative to the invocation directory.
	licenseSource = "LICENSE"
)

var (
	errNotDirectory   = errors.New("not a directory")
	errBinaryNotFound = errors.New("application binary not found")
)

// builder assembles a single platform bundle. Callers go through Run,
// which validates the platform and loads the settings first.
type builder struct {
	fetcher *docfetch.Fetcher

	platformID  string
	buildDir    string
	binaryName  string
	archiveName string
}

func newBuilder(cfg *config.Config, opts *Options) *builder {
	return &builder{
		fetcher:     docfetch.NewFetcher(cfg),
		platformID:  opts.Platform,
		buildDir:    opts.BuildDir,
		binaryName:  opts.BinaryName,
		archiveName: opts.ArchiveName,
	}
}

// run drives the packaging steps in order. Each step is a precondition for
// the next and any failure aborts the whole run: a partially written
// archive is left behind, only the stale-archive removal at the start of
// the next run cleans outputs up.
func (b *builder) run(ctx context.Context) error {
	if err := b.checkBuildDir(); err != nil {
		return err
	}

	binaryPath := filepath.Join(b.buildDir, b.binaryName)
	if err := checkBinary(binaryPath); err != nil {
		return err
	}

	if err := b.ensureLicense(ctx); err != nil {
		return err
	}

	archivePath := filepath.Join(b.buildDir, b.archiveName)
	if err := removeStaleArchive(ctx, archivePath); err != nil {
		return err
	}

	if err := b.fetcher.Ensure(ctx, b.platformID, b.buildDir); err != nil {
		return fmt.Errorf("ensure README: %w", err)
	}

	if err := b.writeArchive(ctx, archivePath, binaryPath); err != nil {
		return err
	}

	checksum, err := fileChecksum(archivePath)
	if err != nil {
		return fmt.Errorf("checksum archive: %w", err)
	}

	logger.InfoKV(ctx, "Archive ready",
		"path", archivePath,
		"sha512", base64.StdEncoding.EncodeToString(checksum))

	return nil
}

// checkBuildDir verifies that the staging directory exists.
func (b *builder) checkBuildDir() error {
	info, err := os.Stat(b.buildDir)
	if err != nil {
		return fmt.Errorf("build directory %s: %w", b.buildDir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("build directory %s: %w", b.buildDir, errNotDirectory)
	}

	return nil
}

// checkBinary verifies that the compiled binary is already in place.
// Nothing is modified before this check passes.
func checkBinary(binaryPath string) error {
	_, err := os.Stat(binaryPath)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", binaryPath, errBinaryNotFound)
	}

	if err != nil {
		return fmt.Errorf("stat %s: %w", binaryPath, err)
	}

	return nil
}

// ensureLicense copies the license from the invocation directory when the
// build directory does not carry one yet. An existing license wins.
func (b *builder) ensureLicense(ctx context.Context) error {
	licensePath := filepath.Join(b.buildDir, LicenseFilename)

	_, err := os.Stat(licensePath)
	if err == nil {
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", licensePath, err)
	}

	if err = copyFile(licenseSource, licensePath); err != nil {
		return fmt.Errorf("copy license: %w", err)
	}

	logger.InfoKV(ctx, "License copied into build directory", "path", licensePath)

	return nil
}

// removeStaleArchive deletes a leftover archive so every run starts from a
// clean slate.
func removeStaleArchive(ctx context.Context, archivePath string) error {
	err := os.Remove(archivePath)
	if err == nil {
		logger.InfoKV(ctx, "Removed stale archive", "path", archivePath)

		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("remove stale archive: %w", err)
}

// writeArchive creates the archive file and fills it with the core entries
// and the platform's extra items.
func (b *builder) writeArchive(ctx context.Context, archivePath, binaryPath string) error {
	writer, err := archive.NewWriter(archivePath)
	if err != nil {
		return err
	}

	if err = b.addEntries(ctx, writer, binaryPath); err != nil {
		_ = writer.Close()

		return err
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	return nil
}

// addEntries stores the binary, license and README at the archive root,
// followed by the platform's registered extra items.
func (b *builder) addEntries(ctx context.Context, writer archive.Writer, binaryPath string) error {
	core := []string{
		binaryPath,
		filepath.Join(b.buildDir, LicenseFilename),
		filepath.Join(b.buildDir, docfetch.ReadmeFilename),
	}

	for _, path := range core {
		if err := writer.AddFile(path, filepath.Base(path)); err != nil {
			return fmt.Errorf("add %s: %w", filepath.Base(path), err)
		}
	}

	return b.addExtraItems(ctx, writer)
}

// addExtraItems copies the platform's extra items into the build directory
// and mirrors them into the archive. Items missing from the invocation
// directory are skipped with a warning.
func (b *builder) addExtraItems(ctx context.Context, writer archive.Writer) error {
	for _, item := range platform.ExtraItems(b.platformID) {
		info, err := os.Stat(item)
		if errors.Is(err, os.ErrNotExist) {
			logger.WarnKV(ctx, "Extra item not found, skipping", "path", item)

			continue
		}

		if err != nil {
			return fmt.Errorf("stat extra item %s: %w", item, err)
		}

		if info.IsDir() {
			err = b.addExtraDir(writer, item)
		} else {
			err = b.addExtraFile(writer, item)
		}

		if err != nil {
			return fmt.Errorf("add extra item %s: %w", item, err)
		}

		logger.InfoKV(ctx, "Extra item added", "path", item)
	}

	return nil
}

// addExtraFile copies a single extra file flat into the build directory
// and stores it at the archive root under its base name.
func (b *builder) addExtraFile(writer archive.Writer, item string) error {
	destPath := filepath.Join(b.buildDir, filepath.Base(item))
	if err := copyFile(item, destPath); err != nil {
		return err
	}

	return writer.AddFile(destPath, filepath.Base(item))
}

// addExtraDir mirrors a directory tree into the build directory and stores
// every contained file under the directory's base name, relative layout
// preserved.
func (b *builder) addExtraDir(writer archive.Writer, item string) error {
	base := filepath.Base(item)

	return filepath.Walk(item, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(item, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}

		destPath := filepath.Join(b.buildDir, base, relPath)
		if err = os.MkdirAll(filepath.Dir(destPath), config.DefaultDirPermissions); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(destPath), err)
		}

		if err = copyFile(path, destPath); err != nil {
			return err
		}

		return writer.AddFile(destPath, filepath.Join(base, relPath))
	})
}
