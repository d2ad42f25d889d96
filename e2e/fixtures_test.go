//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const libraryYAML = `tracks:
  - id: "1"
    name: Aria
    artist: Glenn Gould
    album: Goldberg Variations
    composer: Johann Sebastian Bach
    track_number: 1
  - id: "2"
    name: So What
    artist: Miles Davis
    album: Kind of Blue
    track_number: 1
  - id: "3"
    name: Blue in Green
    artist: Miles Davis
    album: Kind of Blue
    track_number: 3
`

// CreateTestWorkspace creates an isolated directory holding library.yaml
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.t.Helper()
	tf.workspace = tf.t.TempDir()
	if err := tf.WriteLibrary(libraryYAML); err != nil {
		return "", err
	}
	return tf.workspace, nil
}

// LibraryPath is the library file inside the workspace
func (tf *TUITestFramework) LibraryPath() string {
	return filepath.Join(tf.workspace, "library.yaml")
}

// WriteLibrary replaces the workspace library file
func (tf *TUITestFramework) WriteLibrary(content string) error {
	return os.WriteFile(tf.LibraryPath(), []byte(content), 0644)
}

// WriteConfig writes a .tunegrip.toml into the workspace
func (tf *TUITestFramework) WriteConfig(content string) error {
	return os.WriteFile(filepath.Join(tf.workspace, ".tunegrip.toml"), []byte(content), 0644)
}
