package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tryintent/intentdocs/layout"
	g "maragu.dev/gomponents"
)

// Community renders the Community panel for the page built from source,
// using the links from the site configuration.
func (vfs *FS) Community(source string) ([]byte, error) {
	b, err := vfs.fragment(layout.Community(vfs.cfg.Community.ForPage(source)))
	if err != nil {
		return nil, fmt.Errorf("Community: %w", err)
	}
	return b, nil
}

// Footer renders the Footer with the current year.
func (vfs *FS) Footer() ([]byte, error) {
	b, err := vfs.fragment(layout.Footer(vfs.now()))
	if err != nil {
		return nil, fmt.Errorf("Footer: %w", err)
	}
	return b, nil
}

func (vfs *FS) fragment(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := layout.Render(&buf, n); err != nil {
		return nil, err
	}
	return vfs.minify(buf.Bytes())
}

// components renders both components for use in a page template.
func (vfs *FS) components(source string) (community, footer template.HTML, err error) {
	c, err := layout.HTML(layout.Community(vfs.cfg.Community.ForPage(source)))
	if err != nil {
		return "", "", err
	}
	f, err := layout.HTML(layout.Footer(vfs.now()))
	if err != nil {
		return "", "", err
	}
	return c, f, nil
}
