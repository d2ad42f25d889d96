//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("--help")
	require.NoError(t, err, "Help command should run without error")
	require.Contains(t, out, "Usage")
	require.Contains(t, out, "--library")
	require.Contains(t, out, "query")
	require.Contains(t, out, "import")
}

func TestHelpOverlayKeepsResults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--library", tf.LibraryPath()))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("gould"))
	require.True(t, tf.SeePlain("Goldberg Variations"))

	// move focus to the results so ? is a command, not query text
	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("tunegrip Help"), "Should show the help overlay")

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("Goldberg Variations"), "Results should be back after closing help")
}
