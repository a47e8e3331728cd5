package platform

import (
	"errors"
	"fmt"
	"sort"
)

// DocsSiteBaseURL is the public documentation root. It is used when
// expanding relative links and as the footer fallback for platforms
// without a registered documentation page.
const DocsSiteBaseURL = "https://zaparoo.org/docs/"

// ErrUnknownPlatform indicates a platform id that is not in the registry.
var ErrUnknownPlatform = errors.New("unknown platform")

// docFiles maps platform ids to document paths under the docs base URL.
//
//nolint:gochecknoglobals // Static registry data.
var docFiles = map[string]string{
	"batocera":  "batocera/index.md",
	"bazzite":   "bazzite.mdx",
	"chimeraos": "chimeraos.mdx",
	"libreelec": "libreelec.md",
	"linux":     "linux/index.md",
	"mac":       "mac.mdx",
	"mister":    "mister/index.md",
	"mistex":    "mistex.md",
	"recalbox":  "recalbox.mdx",
	"steamos":   "steamos.md",
	"windows":   "windows/index.md",
}

// docSites maps platform ids to their public documentation pages.
//
//nolint:gochecknoglobals // Static registry data.
var docSites = map[string]string{
	"batocera":  "https://zaparoo.org/docs/platforms/batocera/",
	"bazzite":   "https://zaparoo.org/docs/platforms/bazzite/",
	"chimeraos": "https://zaparoo.org/docs/platforms/chimeraos/",
	"libreelec": "https://zaparoo.org/docs/platforms/libreelec/",
	"linux":     "https://zaparoo.org/docs/platforms/linux/",
	"mac":       "https://zaparoo.org/docs/platforms/mac/",
	"mister":    "https://zaparoo.org/docs/platforms/mister/",
	"mistex":    "https://zaparoo.org/docs/platforms/mistex/",
	"recalbox":  "https://zaparoo.org/docs/platforms/recalbox/",
	"steamos":   "https://zaparoo.org/docs/platforms/steamos/",
	"windows":   "https://zaparoo.org/docs/platforms/windows/",
}

// extraItems maps platform ids to extra files or directories bundled into
// the platform's archive. Paths are relative to the invocation directory.
//
//nolint:gochecknoglobals // Static registry data.
var extraItems = map[string][]string{
	"batocera": {"cmd/batocera/scripts"},
}

// DocFile returns the remote document path for a platform id.
func DocFile(id string) (string, error) {
	fileName, ok := docFiles[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, ErrUnknownPlatform)
	}

	return fileName, nil
}

// DocSite returns the public documentation page for a platform id,
// falling back to the docs root when the id has no registered page.
func DocSite(id string) string {
	if site, ok := docSites[id]; ok {
		return site
	}

	return DocsSiteBaseURL
}

// ExtraItems returns the extra paths registered for a platform id.
// The result is a copy the caller may modify.
func ExtraItems(id string) []string {
	items, ok := extraItems[id]
	if !ok {
		return nil
	}

	return append([]string(nil), items...)
}

// IsKnown reports whether a platform id is present in the registry.
func IsKnown(id string) bool {
	_, ok := docFiles[id]

	return ok
}

// IDs returns all registered platform ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(docFiles))
	for id := range docFiles {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
