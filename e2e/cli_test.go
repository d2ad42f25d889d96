//go:build e2e && unix

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("query", "--no-color", "--library", tf.LibraryPath(), "miles")
	require.NoError(t, err, out)
	require.Contains(t, out, "Kind of Blue (2)")
	require.Contains(t, out, "So What")
	require.NotContains(t, out, "Goldberg")
}

func TestQueryCommandEmpty(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("query", "--no-color", "--library", tf.LibraryPath(), "nothing here")
	require.NoError(t, err, out)
	require.Contains(t, out, "No results found")
}

func TestImportThenQuerySQLite(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	ws, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteConfig(`backend = "sqlite"
database = "`+filepath.Join(ws, "library.db")+`"
log_level = "debug"

[search]
group_by = "Artist"
max_results = 50
`))

	out, err := tf.RunCommand("import", tf.LibraryPath())
	require.NoError(t, err, out)
	require.Contains(t, out, "imported 3 tracks")

	out, err = tf.RunCommand("query", "--no-color", "blue")
	require.NoError(t, err, out)
	require.Contains(t, out, "Miles Davis (2)")
}

func TestExportAfterImport(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	ws, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteConfig(`backend = "sqlite"
database = "`+filepath.Join(ws, "library.db")+`"
`))

	out, err := tf.RunCommand("import", tf.LibraryPath())
	require.NoError(t, err, out)

	out, err = tf.RunCommand("export", filepath.Join(ws, "export.yaml"))
	require.NoError(t, err, out)
	require.Contains(t, out, "exported 3 tracks")

	out, err = tf.RunCommand("query", "--no-color", "--backend", "memory", "--library", filepath.Join(ws, "export.yaml"), "--paths", "gould")
	require.NoError(t, err, out)
	require.Contains(t, out, "Goldberg Variations (1) Root:")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteConfig(`backend = "postgres"`))

	out, err := tf.RunCommand("query", "anything")
	require.Error(t, err)
	require.Contains(t, out, "unknown backend")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("version")
	require.NoError(t, err)
	require.Contains(t, out, "tunegrip")
}
