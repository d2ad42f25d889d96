//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmptyStateOnStart(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--library", tf.LibraryPath()))
	require.True(t, tf.Ready(), "Should show the tunegrip title")
	require.True(t, tf.SeePlain("No results found"), "Should show the empty state before any search")
}

func TestSearchAsYouType(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--library", tf.LibraryPath()))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("miles"))
	require.True(t, tf.SeePlain("Kind of Blue"), "Should show the matching album")
	require.True(t, tf.SeePlain("Blue in Green"), "Should list the album's tracks")

	tf.Reset()
	require.NoError(t, tf.Type("zzz"))
	require.True(t, tf.SeePlain("No results found"), "Should fall back to the empty state")
}

func TestLibraryReloadRerunsQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--library", tf.LibraryPath()))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("coltrane"))
	require.True(t, tf.SeePlain("No results found"))

	tf.Reset()
	require.NoError(t, tf.WriteLibrary(libraryYAML+`  - id: "4"
    name: Giant Steps
    artist: John Coltrane
    album: Giant Steps
    track_number: 1
`))
	require.True(t, tf.OutputContainsPlain("Giant Steps", 5*time.Second), "Should pick up the new track after reload")
}

func TestClearResetsResults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--library", tf.LibraryPath()))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("gould"))
	require.True(t, tf.SeePlain("Goldberg Variations"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyCtrlL))
	require.True(t, tf.SeePlain("No results found"))
}
