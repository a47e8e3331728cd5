// Package config defines the packaging settings shared by the bundle
// binaries and provides helpers to load, validate and save them in YAML
// format.
//
// Settings cover the docs base URL documents are fetched from, the HTTP
// user agent and the download timeout. Every field has a built-in default,
// so a settings file is optional: Load falls back to defaults when no file
// is present and none was asked for explicitly.
package config
