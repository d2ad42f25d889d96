package views

import (
	"fmt"
	"strings"
	"time"

	"tunegrip/internal/domain"
)

// GroupListOptions controls which track details GroupList shows
type GroupListOptions struct {
	ShowTrackNumbers bool
	ShowDurations    bool
}

// GroupList renders a result set as group headers followed by their tracks
type GroupList struct {
	styles    *Styles
	icons     IconRenderer
	opts      GroupListOptions
	highlight string
}

// NewGroupList creates a new group list renderer
func NewGroupList(styles *Styles, icons IconRenderer, opts GroupListOptions) *GroupList {
	return &GroupList{
		styles: styles,
		icons:  icons,
		opts:   opts,
	}
}

// SetHighlight sets the text highlighted in group and track names
func (g *GroupList) SetHighlight(query string) {
	g.highlight = strings.TrimSpace(query)
}

// RenderList implements ListRenderer. Each group is rendered at depth and
// its tracks one level deeper. Path is the location of list itself; it does
// not affect the output.
func (g *GroupList) RenderList(_ domain.Path, list domain.ResultSet, depth int) string {
	lines := make([]string, 0, list.TrackCount()+len(list))
	for _, grp := range list {
		lines = append(lines, g.renderGroup(grp, depth)...)
	}
	return strings.Join(lines, "\n")
}

func (g *GroupList) renderGroup(grp *domain.Group, depth int) []string {
	indent := strings.Repeat("  ", depth)

	name := grp.Name
	if name == "" {
		name = "Unknown"
	}
	header := fmt.Sprintf("%s%s %s %s", indent,
		g.icons.RenderIcon("album"),
		g.styles.GroupHeader.Render(g.highlightMatch(name)),
		g.styles.Dim.Render(fmt.Sprintf("(%d)", len(grp.Tracks))))

	lines := []string{header}
	for _, t := range grp.Tracks {
		lines = append(lines, indent+"  "+g.renderTrack(t))
	}
	return lines
}

func (g *GroupList) renderTrack(t domain.Track) string {
	var parts []string
	if g.opts.ShowTrackNumbers {
		num := "  "
		if t.TrackNumber > 0 {
			num = fmt.Sprintf("%2d", t.TrackNumber)
		}
		parts = append(parts, g.styles.TrackNumber.Render(num))
	}

	title := g.styles.Track.Render(g.highlightMatch(t.Name))
	if t.Artist != "" {
		title += g.styles.Dim.Render(" · " + t.Artist)
	}
	parts = append(parts, title)

	if g.opts.ShowDurations && t.Duration > 0 {
		parts = append(parts, g.styles.Duration.Render(formatDuration(t.Duration)))
	}
	return strings.Join(parts, " ")
}

// highlightMatch highlights the first case-insensitive occurrence of the
// highlight text
func (g *GroupList) highlightMatch(text string) string {
	if g.highlight == "" {
		return text
	}
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		return text
	}
	lq := strings.ToLower(g.highlight)
	idx := strings.Index(lower, lq)
	if idx == -1 {
		return text
	}
	end := idx + len(lq)
	return text[:idx] + g.styles.Highlight.Render(text[idx:end]) + text[end:]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
