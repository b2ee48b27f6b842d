package slyr

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var matchColors = map[MatchKind]lipgloss.Color{
	MatchString: lipgloss.Color("1"),
	MatchGuid:   lipgloss.Color("6"),
	MatchColor:  lipgloss.Color("5"),
	MatchDouble: lipgloss.Color("2"),
	MatchInt:    lipgloss.Color("3"),
}

// RenderOptions controls the hex dump produced by ScanResult.Render
type RenderOptions struct {
	// Width is the number of bytes per row, defaults to 16
	Width int
	// NoColor disables ANSI styling
	NoColor bool
}

// Render writes a hex dump with each byte colored by the kind of its winning match,
// followed by the list of winning matches
func (r *ScanResult) Render(w io.Writer, options *RenderOptions) error {
	width := 16
	noColor := false
	if options != nil {
		if options.Width > 0 {
			width = options.Width
		}
		noColor = options.NoColor
	}
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	} else {
		renderer.SetColorProfile(termenv.ANSI)
	}
	styles := make(map[MatchKind]lipgloss.Style, len(matchColors))
	for kind, color := range matchColors {
		styles[kind] = renderer.NewStyle().Foreground(color)
	}
	offsetStyle := renderer.NewStyle().Faint(true)

	var sb strings.Builder
	for row := 0; row < len(r.Buf); row += width {
		sb.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", row)))
		sb.WriteString("  ")
		for i := row; i < row+width && i < len(r.Buf); i++ {
			cell := fmt.Sprintf("%02x", r.Buf[i])
			if m, ok := r.MatchAt(i); ok {
				cell = styles[m.Kind].Render(cell)
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	for _, m := range r.Winners() {
		label := styles[m.Kind].Render(fmt.Sprintf("%-6s", m.Kind))
		fmt.Fprintf(&sb, "0x%04X +%-3d %s %s\n", m.Start, m.Length, label, m.Value)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
