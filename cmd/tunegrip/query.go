package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tunegrip/internal/domain"
	"tunegrip/internal/index"
	"tunegrip/internal/search"
	"tunegrip/internal/ui/views"
)

// textList renders results as plain indented text with colored group headers
type textList struct {
	header  *color.Color
	detail  *color.Color
	numbers bool
	paths   bool
}

func newTextList(numbers, paths bool) *textList {
	return &textList{
		header:  color.New(color.FgCyan, color.Bold),
		detail:  color.New(color.FgHiBlack),
		numbers: numbers,
		paths:   paths,
	}
}

func (l *textList) RenderList(path domain.Path, list domain.ResultSet, depth int) string {
	indent := strings.Repeat("  ", depth)
	groupPaths := index.Paths(path, list)
	var b strings.Builder
	for i, g := range list {
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(&b, "%s%s %s", indent, l.header.Sprint(name), l.detail.Sprintf("(%d)", len(g.Tracks)))
		if l.paths {
			b.WriteString(" " + l.detail.Sprint(groupPaths[i].Encode()))
		}
		b.WriteString("\n")

		_ = index.Walk(domain.ResultSet{g}, path, func(t domain.Track, p domain.Path) error {
			b.WriteString(indent + "  ")
			if l.numbers && t.TrackNumber > 0 {
				fmt.Fprintf(&b, "%2d. ", t.TrackNumber)
			}
			b.WriteString(t.Name)
			if t.Artist != "" {
				b.WriteString(l.detail.Sprint(" · " + t.Artist))
			}
			if l.paths {
				b.WriteString(" " + l.detail.Sprint(p.Encode()))
			}
			b.WriteString("\n")
			return nil
		})
	}
	return strings.TrimRight(b.String(), "\n")
}

// textIcons renders icon names as plain glyphs
type textIcons struct{}

func (textIcons) RenderIcon(name string) string {
	if name == views.EmptyIcon {
		return "♫"
	}
	return " "
}

func runQuery(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.open(ctx); err != nil {
		return err
	}

	query := strings.Join(args, " ")
	rs, err := a.service.Search(ctx, query)
	if err != nil {
		return err
	}

	return printResults(cmd.OutOrStdout(), query, rs, newTextList(a.cfg.UI.ShowTrackNumbers, showPaths))
}

// printResults shows rs through a ResultsView mounted on a one-shot store
func printResults(w io.Writer, query string, rs domain.ResultSet, list views.ListRenderer) error {
	var out string
	store := search.NewStore()
	view := views.NewResultsView(store,
		views.WithListRenderer(list),
		views.WithIconRenderer(textIcons{}),
		views.WithRenderHook(func(s string) { out = s }),
	)
	view.Mount()
	defer view.Unmount()

	store.SetResults(query, rs)
	_, err := fmt.Fprintln(w, out)
	return err
}
