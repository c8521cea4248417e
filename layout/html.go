package layout

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

// Render writes the node to w.
func Render(w io.Writer, n g.Node) error {
	if err := n.Render(w); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	return nil
}

// HTML renders the node into a value that html/template inserts without escaping.
func HTML(n g.Node) (template.HTML, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", fmt.Errorf("HTML: %w", err)
	}
	return template.HTML(b.String()), nil
}

// outbound sets the attributes for a link that opens in a new browsing context.
func outbound(href string) g.Node {
	return g.Group{
		g.Attr("href", href),
		g.Attr("target", "_blank"),
		g.Attr("rel", "noopener noreferrer"),
	}
}
