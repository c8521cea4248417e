/*
Package layout holds the static page components of the Intent documentation
site: the Community panel shown in the sidebar and the page Footer.

Both components are built from fixed, ordered data. The order of the data is
the order in which the entries are displayed. Components are gomponents nodes,
so they can be rendered directly to an io.Writer or converted to
template.HTML with HTML for use inside html/template layouts:

	sidebar, err := layout.HTML(layout.Community(layout.CommunityLinks{}))
	footer, err := layout.HTML(layout.Footer(time.Now()))

Icons are referenced by Glyph, an opaque identifier. A glyph renders as an
empty element carrying the identifier; turning it into a visible icon is the
job of the site's stylesheet.
*/
package layout
