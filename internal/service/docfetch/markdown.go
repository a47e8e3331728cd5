package docfetch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oshokin/bundle-tools/internal/domain/platform"
)

// frontmatterDelimiter opens and closes the metadata block in MDX documents.
const frontmatterDelimiter = "---"

// relativeLinkPattern matches markdown links pointing at .md or .mdx files,
// capturing the link target and an optional anchor.
//
//nolint:gochecknoglobals // Compiled once, used for every document.
var relativeLinkPattern = regexp.MustCompile(`\]\(([^)]+\.mdx?)(#[^)]+)?\)`)

// stripFrontmatter removes a leading front-matter block: everything up to
// and including the second line consisting solely of the delimiter.
// Content without a delimiter on its first line, or with an unclosed block,
// is returned unchanged.
func stripFrontmatter(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || lines[0] != frontmatterDelimiter {
		return content
	}

	for i := 1; i < len(lines); i++ {
		if lines[i] == frontmatterDelimiter {
			return strings.Join(lines[i+1:], "\n")
		}
	}

	return content
}

// expandRelativeLinks rewrites relative markdown links into absolute
// documentation URLs so they stay usable in a plain-text README. External
// and absolute links are left alone. Source documents live under the
// platforms section of the docs site, so same-directory links resolve
// there while links climbing out of it resolve against the docs root.
func expandRelativeLinks(content string) string {
	return relativeLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		submatches := relativeLinkPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		target := submatches[1]

		var anchor string
		if len(submatches) > 2 {
			anchor = submatches[2]
		}

		if strings.HasPrefix(target, "http") || strings.HasPrefix(target, "/") {
			return match
		}

		var climbs int
		for strings.HasPrefix(target, "../") {
			climbs++

			target = strings.TrimPrefix(target, "../")
		}

		target = strings.TrimPrefix(target, "./")
		target = strings.TrimSuffix(target, ".mdx")
		target = strings.TrimSuffix(target, ".md")
		target = strings.TrimSuffix(target, "/index")
		target = strings.TrimSuffix(target, "index")

		absURL := platform.DocsSiteBaseURL + target
		if climbs == 0 {
			absURL = platform.DocsSiteBaseURL + "platforms/" + target
		}

		if !strings.HasSuffix(absURL, "/") {
			absURL += "/"
		}

		absURL = strings.ReplaceAll(absURL, "docs//", "docs/")

		return "](" + absURL + anchor + ")"
	})
}

// addDocFooter appends a pointer to the platform's full documentation page.
// The footer carries no trailing newline, final newline policy belongs to
// the caller.
func addDocFooter(content, platformID string) string {
	return fmt.Sprintf("%s\n\n---\n\nFull documentation: %s", content, platform.DocSite(platformID))
}
