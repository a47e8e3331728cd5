// Package version exposes build metadata for the bundle binaries.
//
// The Version, Commit and BuildTime variables are meant to be overridden at
// build time via ldflags. UserAgent derives the User-Agent header used by
// outbound HTTP requests from the current version, and
// AttachCobraVersionCommand wires a standard `version` subcommand into a
// Cobra CLI.
package version
