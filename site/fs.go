package site

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/html"
)

// FS provides a virtual view of a documentation folder suitable for serving
// Markdown pages, laid out with the Community panel and the Footer, in a web format.
type FS struct {
	fs       fs.FS
	cfg      Config
	now      func() time.Time
	minifier *minify.M
	tpl      *template.Template
	tplMutex sync.RWMutex
}

// Option customizes an FS.
type Option func(*FS)

// WithClock sets the clock used for the copyright year and publish dates.
func WithClock(now func() time.Time) Option {
	return func(vfs *FS) {
		vfs.now = now
	}
}

// WithConfig replaces the configuration read from site.toml.
func WithConfig(cfg Config) Option {
	return func(vfs *FS) {
		vfs.cfg = cfg
	}
}

// New returns a new FS that presents a virtual view of innerFS.
func New(innerFS fs.FS, opts ...Option) (*FS, error) {
	cfg, err := readConfig(innerFS)
	if err != nil {
		return nil, err
	}
	var vfs = FS{
		fs:  innerFS,
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&vfs)
	}
	vfs.minifier = minify.New()
	vfs.minifier.AddFunc("text/html", html.Minify)

	_, err = vfs.loadTemplates()
	if err != nil {
		return nil, err
	}
	return &vfs, nil
}

// Config returns the site configuration.
func (vfs *FS) Config() Config {
	return vfs.cfg
}

// Open opens the named file.
//
// A request for "foo.html" that does not exist is served by rendering
// "foo.md" through the page template. Markdown sources themselves, hidden
// files, and the template folder are not visible.
func (vfs *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name != "." && (isHiddenFile(name) || strings.HasPrefix(name, "template/") || containsSpecialFile(name)) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if path.Ext(name) == ".md" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	f, err := vfs.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == ".html" {
			source := strings.TrimSuffix(name, ".html") + ".md"
			src, err2 := vfs.fs.Open(source)
			if err2 == nil {
				defer src.Close()
				return vfs.newPageFile(src, name, source)
			}
		}
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need to be virtual so that listings hide sources.
	if fi.IsDir() {
		return &virtualDir{File: f, vfs: vfs, path: name}, nil
	}
	if name == "sitemap.txt" {
		defer f.Close()
		return vfs.newSitemapFile(f, name)
	}
	return f, nil
}

// published reports whether the Markdown source is dated in the past.
// Sources with unreadable front matter count as published so that the error
// surfaces when the page is opened.
func (vfs *FS) published(source string) bool {
	var fm FrontMatter
	if err := vfs.readFrontMatter(source, &fm); err != nil {
		return true
	}
	return !vfs.now().Before(fm.Date)
}

// minify compacts rendered HTML when the site asks for it.
func (vfs *FS) minify(b []byte) ([]byte, error) {
	if !vfs.cfg.Minify {
		return b, nil
	}
	m, err := vfs.minifier.Bytes("text/html", b)
	if err != nil {
		return nil, fmt.Errorf("minify: %w", err)
	}
	return m, nil
}
