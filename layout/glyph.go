package layout

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyph identifies an icon in the site's icon set.
type Glyph string

// Glyphs used by the components.
const (
	GlyphPencilSimpleLine Glyph = "pencil-simple-line"
	GlyphShootingStar     Glyph = "shooting-star"
	GlyphMessage          Glyph = "message"
	GlyphHandHeart        Glyph = "hand-heart"
	GlyphNote             Glyph = "note"
	GlyphArrowUpRight     Glyph = "arrow-up-right"
)

// String returns the identifier.
func (gl Glyph) String() string {
	return string(gl)
}

// Node renders the glyph as an empty, decorative element.
func (gl Glyph) Node() g.Node {
	return h.I(
		h.Class("icon icon-"+string(gl)),
		g.Attr("data-glyph", string(gl)),
		g.Attr("aria-hidden", "true"),
	)
}
