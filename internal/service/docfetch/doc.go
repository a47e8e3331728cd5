// Package docfetch downloads platform documentation and renders it as the
// README.txt shipped inside distributable bundles.
//
// A document is resolved through the platform registry, downloaded from
// the configured docs base URL, cleaned up for plain-text reading (MDX
// front-matter stripped, relative links expanded to absolute ones) and
// finished with a footer pointing at the platform's documentation page.
//
// The same Fetcher backs the standalone bundle-docfetch binary and the
// packager's README step, so both always resolve a platform to the same
// remote document.
package docfetch
