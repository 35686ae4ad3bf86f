package text

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
)

// Request describes a block of text to lay out.
type Request struct {
	Text          string
	Family        string
	Size          float64 // pixels per em
	Justification model.Justification

	// Tracking is extra space after each glyph in thousandths of an em.
	Tracking float64

	// LineHeight is the distance between baselines. Zero uses the
	// provider's line spacing.
	LineHeight float64

	// Baseline shifts every glyph vertically.
	Baseline float64
}

// RequestFor returns the layout request of a text document.
func RequestFor(doc model.TextDocument) Request {
	return Request{
		Text:          doc.Text,
		Family:        doc.FontFamily,
		Size:          doc.FontSize,
		Justification: doc.Justification,
		Tracking:      doc.Tracking,
		LineHeight:    doc.LineHeight,
		Baseline:      doc.Baseline,
	}
}

// Glyph is one positioned glyph.
type Glyph struct {
	ID      uint16
	Cluster int // index of the first rune in the request text
	Origin  motion.Vec2
	Advance float64

	// Outline is in layer space, already placed at Origin.
	Outline []motion.BezierPath
}

// Line is one line of laid out glyphs.
type Line struct {
	Glyphs   []Glyph
	Width    float64
	Baseline float64
}

// Layout is the result of laying out a request.
type Layout struct {
	Family string // the family actually used
	Lines  []Line
}

// Paths returns every glyph outline as one compound path.
func (l *Layout) Paths() motion.CompoundPath {
	var out motion.CompoundPath
	for _, line := range l.Lines {
		for _, g := range line.Glyphs {
			out.Append(g.Outline...)
		}
	}
	return out
}

// GlyphCount returns the number of glyphs across all lines.
func (l *Layout) GlyphCount() int {
	n := 0
	for _, line := range l.Lines {
		n += len(line.Glyphs)
	}
	return n
}

// splitLines splits runes at \r, \n and \r\n. It returns the start
// offset of each line alongside its runes.
func splitLines(runes []rune) (lines [][]rune, starts []int) {
	start := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\r' && runes[i] != '\n' {
			continue
		}
		lines = append(lines, runes[start:i])
		starts = append(starts, start)
		if runes[i] == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	lines = append(lines, runes[start:])
	starts = append(starts, start)
	return lines, starts
}

// justify returns the x offset of a line of the given width.
func justify(j model.Justification, width float64) float64 {
	switch j {
	case model.JustifyRight:
		return -width
	case model.JustifyCenter:
		return -width / 2
	default:
		return 0
	}
}
