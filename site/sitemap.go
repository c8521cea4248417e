package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// newSitemapFile executes sitemap.txt as a template over the list of
// published pages, returning the resulting file.
func (vfs *FS) newSitemapFile(f fs.File, pathname string) (fs.File, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	tpl, err := template.New("sitemap").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	pages, err := vfs.sitemap()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	var wtr bytes.Buffer
	err = tpl.Execute(&wtr, pages)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	rf, err := newRenderFile(f, pathname, wtr.Bytes())
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	return rf, nil
}

// sitemap lists the URL paths of the pages. Unpublished pages are already
// missing from directory listings. Folder index pages
// are listed as the folder itself.
func (vfs *FS) sitemap() ([]string, error) {
	var result []string
	err := fs.WalkDir(vfs, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".html" || isErrorPage(name) {
			return nil
		}
		p := "/" + name
		if path.Base(name) == "index.html" {
			p = strings.TrimSuffix(p, "index.html")
		}
		result = append(result, p)
		return nil
	})
	return result, err
}
