package archive

import "strings"

// Writer adds files to an archive under construction.
// Entry names always use forward slashes regardless of the host separator.
type Writer interface {
	// AddFile stores the file at path under the given entry name.
	AddFile(path, name string) error
	// Close finalizes the archive and closes the underlying file.
	// The archive is not readable until Close has returned.
	Close() error
}

// NewWriter creates an archive file at path, picking the container format
// from the name: names ending in .tar.gz or .tgz produce a gzipped tarball,
// anything else a deflate-compressed ZIP.
func NewWriter(path string) (Writer, error) {
	if isTarGz(path) {
		return newTarGzWriter(path)
	}

	return newZipWriter(path)
}

// isTarGz reports whether the archive name selects the tarball format.
func isTarGz(name string) bool {
	name = strings.ToLower(name)

	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz")
}
