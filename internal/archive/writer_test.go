package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func readZipEntries(t *testing.T, path string) map[string]string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, reader.Close())
	}()

	entries := make(map[string]string, len(reader.File))

	for _, entry := range reader.File {
		rc, openErr := entry.Open()
		require.NoError(t, openErr)

		contents, readErr := io.ReadAll(rc)
		require.NoError(t, readErr)
		require.NoError(t, rc.Close())

		entries[entry.Name] = string(contents)
	}

	return entries
}

func readTarGzEntries(t *testing.T, path string) map[string]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, file.Close())
	}()

	gzReader, err := gzip.NewReader(file)
	require.NoError(t, err)

	entries := make(map[string]string)
	tarReader := tar.NewReader(gzReader)

	for {
		header, readErr := tarReader.Next()
		if readErr == io.EOF {
			break
		}

		require.NoError(t, readErr)

		contents, readErr := io.ReadAll(tarReader)
		require.NoError(t, readErr)

		entries[header.Name] = string(contents)
	}

	return entries
}

func TestZipWriterRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	binaryPath := writeSourceFile(t, dir, "app.bin", "binary contents")
	readmePath := writeSourceFile(t, dir, "README.txt", "read me\n")

	archivePath := filepath.Join(dir, "bundle.zip")
	writer, err := NewWriter(archivePath)
	require.NoError(t, err)

	require.NoError(t, writer.AddFile(binaryPath, "app.bin"))
	require.NoError(t, writer.AddFile(readmePath, "docs/README.txt"))
	require.NoError(t, writer.Close())

	entries := readZipEntries(t, archivePath)
	require.Equal(t, map[string]string{
		"app.bin":         "binary contents",
		"docs/README.txt": "read me\n",
	}, entries)
}

func TestZipWriterUsesDeflate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sourcePath := writeSourceFile(t, dir, "app.bin", "binary contents")

	archivePath := filepath.Join(dir, "bundle.zip")
	writer, err := NewWriter(archivePath)
	require.NoError(t, err)
	require.NoError(t, writer.AddFile(sourcePath, "app.bin"))
	require.NoError(t, writer.Close())

	reader, err := zip.OpenReader(archivePath)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, reader.Close())
	}()

	require.Len(t, reader.File, 1)
	require.Equal(t, uint16(zip.Deflate), reader.File[0].Method)
}

func TestTarGzWriterRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	binaryPath := writeSourceFile(t, dir, "app.bin", "binary contents")
	licensePath := writeSourceFile(t, dir, "LICENSE.txt", "license text\n")

	archivePath := filepath.Join(dir, "bundle.tar.gz")
	writer, err := NewWriter(archivePath)
	require.NoError(t, err)

	require.NoError(t, writer.AddFile(binaryPath, "app.bin"))
	require.NoError(t, writer.AddFile(licensePath, "LICENSE.txt"))
	require.NoError(t, writer.Close())

	entries := readTarGzEntries(t, archivePath)
	require.Equal(t, map[string]string{
		"app.bin":     "binary contents",
		"LICENSE.txt": "license text\n",
	}, entries)
}

func TestNewWriterPicksFormatFromName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sourcePath := writeSourceFile(t, dir, "data.txt", "payload")

	tests := []struct {
		name    string
		archive string
		isTarGz bool
	}{
		{"zip suffix", "bundle.zip", false},
		{"no suffix", "bundle", false},
		{"tar.gz suffix", "bundle.tar.gz", true},
		{"tgz suffix", "bundle.tgz", true},
		{"uppercase tarball", "BUNDLE.TAR.GZ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			archivePath := filepath.Join(dir, tt.archive)
			writer, err := NewWriter(archivePath)
			require.NoError(t, err)
			require.NoError(t, writer.AddFile(sourcePath, "data.txt"))
			require.NoError(t, writer.Close())

			if tt.isTarGz {
				require.Contains(t, readTarGzEntries(t, archivePath), "data.txt")
			} else {
				require.Contains(t, readZipEntries(t, archivePath), "data.txt")
			}
		})
	}
}

func TestAddFileMissingSourceFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer, err := NewWriter(filepath.Join(dir, "bundle.zip"))
	require.NoError(t, err)

	require.Error(t, writer.AddFile(filepath.Join(dir, "missing.bin"), "missing.bin"))
	require.NoError(t, writer.Close())
}
