package docfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/domain/platform"
	"github.com/oshokin/bundle-tools/internal/logger"
)

// ReadmeFilename is the document name written into target directories.
const ReadmeFilename = "README.txt"

var (
	errBadHTTPStatus   = errors.New("unexpected http status")
	errInvalidEncoding = errors.New("document is not valid UTF-8")
	errNotDirectory    = errors.New("not a directory")
)

// Fetcher downloads platform documents and renders them as plain-text READMEs.
type Fetcher struct {
	cfg    *config.Config
	client *http.Client
}

// NewFetcher creates a Fetcher with the timeout and headers from cfg.
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Ensure writes dir/README.txt for the platform unless the file already
// exists. An existing README counts as satisfied: no network request is
// made and the file is left untouched.
func (f *Fetcher) Ensure(ctx context.Context, platformID, dir string) error {
	readmePath := filepath.Join(dir, ReadmeFilename)

	_, err := os.Stat(readmePath)
	if err == nil {
		logger.InfoKV(ctx, "README already exists, skipping download", "path", readmePath)

		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", readmePath, err)
	}

	return f.Fetch(ctx, platformID, dir)
}

// Fetch downloads the platform's document and writes dir/README.txt,
// overwriting any previous file. The directory must already exist.
func (f *Fetcher) Fetch(ctx context.Context, platformID, dir string) error {
	fileName, err := platform.DocFile(platformID)
	if err != nil {
		return err
	}

	if err = ensureDirectory(dir); err != nil {
		return err
	}

	docURL, err := f.docURL(fileName)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Downloading platform document", "url", docURL)

	body, err := f.download(ctx, docURL)
	if err != nil {
		return err
	}

	content, err := renderReadme(body, fileName, platformID)
	if err != nil {
		return err
	}

	readmePath := filepath.Join(dir, ReadmeFilename)
	if err = os.WriteFile(readmePath, content, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", readmePath, err)
	}

	logger.InfoKV(ctx, "README written", "path", readmePath, "size", len(content))

	return nil
}

// docURL joins the configured docs base URL with the document path.
func (f *Fetcher) docURL(fileName string) (string, error) {
	base, err := url.Parse(f.cfg.DocsBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse docs base URL: %w", err)
	}

	base.Path = path.Join(base.Path, fileName)

	return base.String(), nil
}

// download performs a single GET request. There are no retries: a failed
// download aborts the whole run.
func (f *Fetcher) download(ctx context.Context, docURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s, %s: %w", docURL, resp.Status, errBadHTTPStatus)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}

// renderReadme turns a raw document into README content ending in exactly
// one trailing newline.
func renderReadme(body []byte, fileName, platformID string) ([]byte, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%s: %w", fileName, errInvalidEncoding)
	}

	content := string(body)

	// Front-matter blocks appear only in the MDX sources.
	if strings.HasSuffix(strings.ToLower(fileName), ".mdx") {
		content = stripFrontmatter(content)
	}

	content = expandRelativeLinks(content)
	content = addDocFooter(strings.TrimSpace(content), platformID)

	return []byte(content + "\n"), nil
}

// ensureDirectory fails when dir is missing or is not a directory.
func ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("target directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("target directory %s: %w", dir, errNotDirectory)
	}

	return nil
}
