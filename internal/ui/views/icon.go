package views

// glyphs maps icon names to the terminal characters drawn for them
var glyphs = map[string]string{
	"audiotrack": "♫",
	"album":      "◉",
	"person":     "☺",
	"search":     "⌕",
	"error":      "✗",
}

// Icons renders named icons as single styled glyphs
type Icons struct {
	styles *Styles
}

// NewIcons creates a new icon renderer
func NewIcons(styles *Styles) *Icons {
	return &Icons{styles: styles}
}

// RenderIcon implements IconRenderer. Unknown names render as a blank cell
// so layouts keep their width.
func (i *Icons) RenderIcon(name string) string {
	g, ok := glyphs[name]
	if !ok {
		g = " "
	}
	return i.styles.Icon.Render(g)
}
