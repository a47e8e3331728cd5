// Package packager assembles distributable platform bundles.
//
// A bundle is an archive holding the application binary, the license, a
// README rendered from the platform's documentation and any extra items
// the platform registry declares. The build directory is the staging area:
// missing license and README files are materialized there first, extra
// items are mirrored into it, and the archive is written next to them.
// A stale archive from a previous run is removed before packaging starts.
package packager
