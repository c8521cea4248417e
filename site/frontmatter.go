package site

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FrontMatter holds the TOML header of a Markdown page.
type FrontMatter struct {
	Title       string    `toml:"title"`       // Title of this page
	Description string    `toml:"description"` // Summary for meta tags and listings
	Date        time.Time `toml:"date"`        // The page is not served before this time
	Template    string    `toml:"template"`    // The name of the template to use
	Tags        []string  `toml:"tags"`
	Redirect    string    `toml:"redirect"` // Redirect the browser to another location
}

var fmRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// extractFrontMatter splits the front matter and Markdown content.
func extractFrontMatter(x []byte) (fm, r []byte) {
	subs := fmRegexp.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}

// parseFrontMatter unmarshals front matter, leaving fm untouched when there is none.
func parseFrontMatter(b []byte, fm *FrontMatter) error {
	if len(b) == 0 {
		return nil
	}
	if err := toml.Unmarshal(b, fm); err != nil {
		return fmt.Errorf("parseFrontMatter: %w", err)
	}
	return nil
}

// readFrontMatter reads the front matter of the named Markdown source.
func (vfs *FS) readFrontMatter(name string, fm *FrontMatter) error {
	b, err := fs.ReadFile(vfs.fs, name)
	if err != nil {
		return fmt.Errorf("readFrontMatter: %w", err)
	}
	fmb, _ := extractFrontMatter(b)
	return parseFrontMatter(fmb, fm)
}
