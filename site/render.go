package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/russross/blackfriday/v2"
)

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // folder of the page, ending in a slash
	Filename string // name of the page
	Source   string // Markdown file the page is rendered from
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// page is what is passed to page templates.
type page struct {
	Site        Config
	FrontMatter FrontMatter
	Page        PageInfo
	Content     template.HTML // rendered Markdown
	Community   template.HTML // sidebar panel
	Footer      template.HTML
}

// renderFile is a file whose contents were produced by the FS.
// It does not hold on to the underlying file.
type renderFile struct {
	info   fs.FileInfo
	reader *bytes.Reader
}

// Stat returns a FileInfo describing the rendered file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read reads from the rendered data.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read, interpreted according to whence.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// Close does nothing; the data is in memory.
func (f *renderFile) Close() error {
	return nil
}

// renderFileInfo reports the virtual name and the length of the rendered data.
type renderFileInfo struct {
	virtualFileInfo

	size int64
}

// Size reports the length of the rendered data.
func (rfi renderFileInfo) Size() int64 {
	return rfi.size
}

// newRenderFile wraps rendered data as a file named after pathname,
// taking the remaining metadata from f.
func newRenderFile(f fs.File, pathname string, b []byte) (*renderFile, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return &renderFile{
		info: renderFileInfo{
			virtualFileInfo: virtualFileInfo{FileInfo: fi, name: path.Base(pathname)},
			size:            int64(len(b)),
		},
		reader: bytes.NewReader(b),
	}, nil
}

// renderMarkdown converts Markdown to HTML.
func renderMarkdown(b []byte) template.HTML {
	return template.HTML(blackfriday.Run(b, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
}

// newPageFile reads the Markdown source, extracts the front matter, renders the
// Markdown and the components, and executes the page template.
// Pages dated in the future do not exist yet.
func (vfs *FS) newPageFile(f fs.File, pathname, source string) (fs.File, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	fm, r := extractFrontMatter(b)

	var front FrontMatter
	if err = parseFrontMatter(fm, &front); err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	if vfs.now().Before(front.Date) {
		return nil, &fs.PathError{Op: "open", Path: pathname, Err: fs.ErrNotExist}
	}

	p, bn := path.Split(pathname)
	var data = page{
		Site:        vfs.cfg,
		FrontMatter: front,
		Page: PageInfo{
			Path:     "/" + p,
			Filename: bn,
			Source:   source,
		},
		Content: renderMarkdown(r),
	}
	data.Community, data.Footer, err = vfs.components(source)
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}

	templateName := "default"
	if front.Template != "" {
		templateName = front.Template
	}
	var wtr bytes.Buffer
	err = vfs.getTemplates().ExecuteTemplate(&wtr, templateName, data)
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	out, err := vfs.minify(wtr.Bytes())
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	rf, err := newRenderFile(f, pathname, out)
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	return rf, nil
}
