package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// zipWriter writes deflate-compressed ZIP archives.
type zipWriter struct {
	file *os.File
	zw   *zip.Writer
}

func newZipWriter(path string) (*zipWriter, error) {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	return &zipWriter{
		file: file,
		zw:   zip.NewWriter(file),
	}, nil
}

// AddFile stores the file at path as a deflate-compressed entry.
func (w *zipWriter) AddFile(path, name string) error {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("zip header for %s: %w", path, err)
	}

	header.Name = filepath.ToSlash(name)
	header.Method = zip.Deflate

	entry, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}

	if _, err = io.Copy(entry, file); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}

	return nil
}

// Close writes the central directory and closes the archive file.
func (w *zipWriter) Close() error {
	if err := w.zw.Close(); err != nil {
		_ = w.file.Close()

		return fmt.Errorf("close zip writer: %w", err)
	}

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}
