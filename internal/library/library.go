// Package library loads music libraries and answers track searches against
// them.
package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"tunegrip/internal/domain"
)

// ErrNoLibrary is returned when no library file has been configured
var ErrNoLibrary = errors.New("no library configured")

// Searcher finds tracks matching a query
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Track, error)
}

// Replacer swaps the full contents of a library
type Replacer interface {
	Replace(ctx context.Context, tracks []domain.Track) error
}

// Library is a searchable, reloadable track collection
type Library interface {
	Searcher
	Replacer
	Count(ctx context.Context) (int, error)
}

// File is the on-disk YAML library format
type File struct {
	Tracks []domain.Track `yaml:"tracks"`
}

// LoadFile reads tracks from a YAML library file
func LoadFile(path string) ([]domain.Track, error) {
	if path == "" {
		return nil, ErrNoLibrary
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse library file %s: %w", path, err)
	}

	for i, t := range f.Tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("library file %s: track %d (%q) has no id", path, i, t.Name)
		}
	}
	return f.Tracks, nil
}

// SaveFile writes tracks to a YAML library file
func SaveFile(path string, tracks []domain.Track) error {
	data, err := yaml.Marshal(File{Tracks: tracks})
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}
	return nil
}

// MemoryLibrary keeps every track in memory and matches by substring
type MemoryLibrary struct {
	mu     sync.RWMutex
	tracks []domain.Track
}

// NewMemoryLibrary creates a library holding tracks
func NewMemoryLibrary(tracks []domain.Track) *MemoryLibrary {
	return &MemoryLibrary{tracks: tracks}
}

// Replace implements Replacer
func (l *MemoryLibrary) Replace(_ context.Context, tracks []domain.Track) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracks = tracks
	return nil
}

// Count implements Library
func (l *MemoryLibrary) Count(context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tracks), nil
}

// Search implements Searcher. The query matches case-insensitively against
// name, artist, album and composer. An empty query matches nothing.
func (l *MemoryLibrary) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Track
	for i, t := range l.tracks {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !matches(t, q) {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func matches(t domain.Track, q string) bool {
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Artist), q) ||
		strings.Contains(strings.ToLower(t.Album), q) ||
		strings.Contains(strings.ToLower(t.Composer), q)
}
