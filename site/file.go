package site

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
)

// virtualFileInfo overrides the name of a file.
type virtualFileInfo struct {
	fs.FileInfo

	name string
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// pageDirEntry presents a Markdown source as the HTML page rendered from it.
type pageDirEntry struct {
	fs.DirEntry

	name string
}

// Name returns the virtual name of the entry.
func (de pageDirEntry) Name() string {
	return de.name
}

// Info returns the FileInfo of the source under the virtual name.
func (de pageDirEntry) Info() (fs.FileInfo, error) {
	fi, err := de.DirEntry.Info()
	if err != nil {
		return nil, err
	}
	return virtualFileInfo{FileInfo: fi, name: de.name}, nil
}

// virtualDir is a directory whose listing hides special files and unpublished
// pages, and shows Markdown sources as HTML pages.
type virtualDir struct {
	fs.File

	vfs  *FS
	path string
}

// ReadDir reads the contents of the directory, following the fs.ReadDirFile contract.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	rdf, ok := d.File.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: d.path, Err: errors.New("not a directory")}
	}
	var r []fs.DirEntry
	for {
		entries, err := rdf.ReadDir(n)
		for _, entry := range entries {
			if de, ok := d.present(entry); ok {
				r = append(r, de)
			}
		}
		if n <= 0 {
			return r, err
		}
		if len(r) > 0 {
			if errors.Is(err, io.EOF) {
				// report EOF on the next call
				return r, nil
			}
			return r, err
		}
		if err != nil {
			return nil, err
		}
	}
}

// present decides how an underlying entry appears in the listing.
func (d *virtualDir) present(entry fs.DirEntry) (fs.DirEntry, bool) {
	name := entry.Name()
	if strings.HasPrefix(name, ".") {
		return nil, false
	}
	if d.path == "." && isHiddenFile(name) {
		return nil, false
	}
	if !entry.IsDir() && path.Ext(name) == ".md" {
		if !d.vfs.published(path.Join(d.path, name)) {
			return nil, false
		}
		return pageDirEntry{DirEntry: entry, name: strings.TrimSuffix(name, ".md") + ".html"}, true
	}
	return entry, true
}
