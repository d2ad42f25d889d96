package domain

import (
	"strings"
	"time"
)

// Track represents a single track in the music library
type Track struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Artist      string        `yaml:"artist"`
	Album       string        `yaml:"album"`
	AlbumArtist string        `yaml:"album_artist,omitempty"`
	Composer    string        `yaml:"composer,omitempty"`
	Year        int           `yaml:"year,omitempty"`
	TrackNumber int           `yaml:"track_number,omitempty"`
	DiscNumber  int           `yaml:"disc_number,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty"`
	Location    string        `yaml:"location,omitempty"`
}

// Field returns the string value of a named track attribute ("" if unknown)
func (t Track) Field(name string) string {
	switch strings.ToLower(name) {
	case "name":
		return t.Name
	case "artist":
		return t.Artist
	case "album":
		return t.Album
	case "albumartist", "album_artist":
		if t.AlbumArtist != "" {
			return t.AlbumArtist
		}
		return t.Artist
	case "composer":
		return t.Composer
	case "location":
		return t.Location
	}
	return ""
}

// Key identifies a group within its parent
type Key string

// RootKey is the first element of every path
const RootKey Key = "Root"

// Path locates a group or track from the root of a collection
type Path []Key

// RootPath returns a fresh path containing only the root key
func RootPath() Path {
	return Path{RootKey}
}

// Append returns a new path with k added, leaving p untouched
func (p Path) Append(k Key) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = k
	return np
}

// Encode joins the path into a single string key
func (p Path) Encode() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = string(k)
	}
	return strings.Join(parts, ":")
}

// Group is a named group of tracks, the unit of a search result
type Group struct {
	Key    Key
	Name   string
	Tracks []Track
}

// ResultSet is the ordered list of groups produced by a search.
// Items are compared by identity, never by value.
type ResultSet []*Group

// TrackCount returns the number of tracks across all groups
func (rs ResultSet) TrackCount() int {
	n := 0
	for _, g := range rs {
		if g != nil {
			n += len(g.Tracks)
		}
	}
	return n
}
