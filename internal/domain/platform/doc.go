// Package platform is the static registry of distributable platforms.
//
// For every platform id it knows the remote document rendered into the
// bundle's README, the public documentation page linked from the README
// footer, and the extra files or directories shipped inside the platform's
// archive. Both bundle binaries consult this single registry, so a platform
// always resolves to the same document no matter which tool asked.
package platform
