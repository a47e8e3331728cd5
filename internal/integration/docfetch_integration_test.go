package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/bundle-tools/internal/config"
	"github.com/oshokin/bundle-tools/internal/service/docfetch"
)

// TestDocFetch_WritesReadme runs the full fetch workflow against a local
// docs server using settings loaded from a file.
func TestDocFetch_WritesReadme(t *testing.T) {
	const document = "# Zaparoo on Batocera\n\nSee [MiSTer](../mister/index.md).\n"

	var (
		mu   sync.Mutex
		hits int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()

		require.Equal(t, "/batocera/index.md", r.URL.Path)

		_, _ = w.Write([]byte(document))
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		DocsBaseURL: server.URL + "/",
		UserAgent:   "bundle-tools-test",
		Timeout:     5 * time.Second,
	}))

	options := &docfetch.Options{
		ConfigPath: cfgPath,
		Platform:   "batocera",
		TargetDir:  dir,
	}

	require.NoError(t, docfetch.Run(context.Background(), options))

	readmePath := filepath.Join(dir, docfetch.ReadmeFilename)
	contents, err := os.ReadFile(readmePath)
	require.NoError(t, err)

	readme := string(contents)
	require.Contains(t, readme, "# Zaparoo on Batocera")
	require.Contains(t, readme, "[MiSTer](https://zaparoo.org/docs/mister/)")
	require.Contains(t, readme, "Full documentation: https://zaparoo.org/docs/platforms/batocera/")
	require.True(t, strings.HasSuffix(readme, "\n"))
	require.False(t, strings.HasSuffix(readme, "\n\n"))

	// A second run must leave the file alone and stay off the network.
	require.NoError(t, docfetch.Run(context.Background(), options))

	unchanged, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	require.Equal(t, readme, string(unchanged))

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, 1, hits)
}
