// Package index groups library tracks into the collections shown as
// search results.
package index

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tunegrip/internal/domain"
)

// Collector turns a flat list of tracks into an ordered set of groups
type Collector interface {
	Collect(tracks []domain.Track) domain.ResultSet
}

// KeyFor derives the stable key used for a group with the given name
func KeyFor(name string) domain.Key {
	return domain.Key(fmt.Sprintf("%x", sha1.Sum([]byte(name)))[:6])
}

// By returns a Collector which groups tracks by the named attribute.
// Groups appear in the order their first track was seen.
func By(attr string) Collector {
	return groupBy{attr: attr}
}

type groupBy struct {
	attr string
}

// Collect implements Collector
func (g groupBy) Collect(tracks []domain.Track) domain.ResultSet {
	var rs domain.ResultSet
	byKey := make(map[domain.Key]*domain.Group)
	for _, t := range tracks {
		name := t.Field(g.attr)
		k := KeyFor(name)
		grp, ok := byKey[k]
		if !ok {
			grp = &domain.Group{Key: k, Name: name}
			byKey[k] = grp
			rs = append(rs, grp)
		}
		grp.Tracks = append(grp.Tracks, t)
	}
	return rs
}

// SortByName orders the groups by name, case-insensitively. Groups with the
// same name keep their relative order.
func SortByName(rs domain.ResultSet) {
	sort.SliceStable(rs, func(i, j int) bool {
		return strings.ToLower(rs[i].Name) < strings.ToLower(rs[j].Name)
	})
}

// SortTracks orders tracks inside every group by disc then track number
func SortTracks(rs domain.ResultSet) {
	for _, g := range rs {
		sort.SliceStable(g.Tracks, func(i, j int) bool {
			a, b := g.Tracks[i], g.Tracks[j]
			if a.DiscNumber != b.DiscNumber {
				return a.DiscNumber < b.DiscNumber
			}
			return a.TrackNumber < b.TrackNumber
		})
	}
}

// Paths returns the path of each group directly beneath root
func Paths(root domain.Path, rs domain.ResultSet) []domain.Path {
	paths := make([]domain.Path, 0, len(rs))
	for _, g := range rs {
		paths = append(paths, root.Append(g.Key))
	}
	return paths
}

// WalkFn is called for each track visited by Walk. Returning a non-nil error
// stops the traversal and the error is returned from Walk.
type WalkFn func(t domain.Track, p domain.Path) error

// Walk visits every track in the result set. Track paths are
// root/<group key>/<track index>.
func Walk(rs domain.ResultSet, root domain.Path, fn WalkFn) error {
	for _, g := range rs {
		gp := root.Append(g.Key)
		for i, t := range g.Tracks {
			if err := fn(t, gp.Append(domain.Key(strconv.Itoa(i)))); err != nil {
				return err
			}
		}
	}
	return nil
}
