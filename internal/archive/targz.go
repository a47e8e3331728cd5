package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// tarGzWriter writes gzip-compressed tarballs.
type tarGzWriter struct {
	file *os.File
	gw   *gzip.Writer
	tw   *tar.Writer
}

func newTarGzWriter(path string) (*tarGzWriter, error) {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	gw := gzip.NewWriter(file)

	return &tarGzWriter{
		file: file,
		gw:   gw,
		tw:   tar.NewWriter(gw),
	}, nil
}

// AddFile stores the file at path as a tar entry.
func (w *tarGzWriter) AddFile(path, name string) error {
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

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("tar header for %s: %w", path, err)
	}

	header.Name = filepath.ToSlash(name)

	if err = w.tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", name, err)
	}

	if _, err = io.Copy(w.tw, file); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}

	return nil
}

// Close flushes the tar and gzip streams before closing the archive file.
func (w *tarGzWriter) Close() error {
	if err := w.tw.Close(); err != nil {
		_ = w.gw.Close()
		_ = w.file.Close()

		return fmt.Errorf("close tar writer: %w", err)
	}

	if err := w.gw.Close(); err != nil {
		_ = w.file.Close()

		return fmt.Errorf("close gzip writer: %w", err)
	}

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}
