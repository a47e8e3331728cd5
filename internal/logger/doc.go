// Package logger provides structured logging for the bundle binaries,
// built on top of zap's SugaredLogger.
//
// A global logger writing plain text to stderr is configured on package
// initialization, so stdout stays reserved for command output. The log
// level can be changed at runtime with SetLevel, and ParseLogLevel maps
// user-supplied flag values onto zap levels.
//
// Loggers travel through contexts: ToContext stores a logger, FromContext
// retrieves it (falling back to the global one), and WithName, WithKV and
// WithFields derive contexts whose loggers carry a component name or extra
// fields. The package-level helpers (Info, InfoKV, Errorf and friends) log
// through the context's logger.
package logger
