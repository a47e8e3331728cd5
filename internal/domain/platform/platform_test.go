package platform

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocFile(t *testing.T) {
	t.Parallel()

	t.Run("known platform", func(t *testing.T) {
		t.Parallel()

		fileName, err := DocFile("batocera")
		require.NoError(t, err)
		require.Equal(t, "batocera/index.md", fileName)
	})

	t.Run("unknown platform", func(t *testing.T) {
		t.Parallel()

		_, err := DocFile("dreamcast")
		require.ErrorIs(t, err, ErrUnknownPlatform)
	})
}

func TestDocSiteFallsBackToDocsRoot(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://zaparoo.org/docs/platforms/mister/", DocSite("mister"))
	require.Equal(t, DocsSiteBaseURL, DocSite("dreamcast"))
	require.Equal(t, DocsSiteBaseURL, DocSite(""))
}

func TestExtraItemsReturnsCopy(t *testing.T) {
	t.Parallel()

	items := ExtraItems("batocera")
	require.Equal(t, []string{"cmd/batocera/scripts"}, items)

	items[0] = "mutated"
	require.Equal(t, []string{"cmd/batocera/scripts"}, ExtraItems("batocera"))

	require.Nil(t, ExtraItems("windows"))
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	require.True(t, IsKnown("windows"))
	require.True(t, IsKnown("mac"))
	require.False(t, IsKnown("dreamcast"))
	require.False(t, IsKnown(""))
}

func TestIDs(t *testing.T) {
	t.Parallel()

	ids := IDs()
	require.Len(t, ids, 11)
	require.True(t, sort.StringsAreSorted(ids))
	require.Contains(t, ids, "batocera")
	require.Contains(t, ids, "windows")
}

// Every registered document must resolve inside the docs tree without
// climbing out of it.
func TestDocFilesAreRelativePaths(t *testing.T) {
	t.Parallel()

	for _, id := range IDs() {
		fileName, err := DocFile(id)
		require.NoError(t, err)
		require.False(t, strings.HasPrefix(fileName, "/"), "platform %s", id)
		require.NotContains(t, fileName, "..", "platform %s", id)
	}
}
