// Package archive writes distributable bundle archives.
//
// NewWriter picks the container format from the archive name: names ending
// in .tar.gz or .tgz produce a gzipped tarball, everything else a
// deflate-compressed ZIP. Entries keep the metadata of their source files
// and their names always use forward slashes, so archives extract the same
// way on every platform.
package archive
