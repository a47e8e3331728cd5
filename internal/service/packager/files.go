package packager

import (
	"crypto"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Register SHA-512 for archive checksums.
	_ "crypto/sha512"

	"github.com/oshokin/bundle-tools/internal/config"
)

// checksumFunction hashes produced archives for the completion log.
const checksumFunction = crypto.SHA512

var errHashUnavailable = errors.New("hash function unavailable")

// copyFile duplicates src into dst with restricted permissions.
func copyFile(src, dst string) error {
	contents, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	if err = os.WriteFile(dst, contents, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	return nil
}

// fileChecksum returns the checksum of the file at path using checksumFunction.
func fileChecksum(path string) ([]byte, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !checksumFunction.Available() {
		return nil, errHashUnavailable
	}

	hasher := checksumFunction.New()
	if _, err = hasher.Write(contents); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}
