package site

import (
	"errors"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
)

// File holds data about a page endpoint and is used in templates.
type File struct {
	FrontMatter FrontMatter
	Filename    string
}

// dir returns the visible entries of a folder, skipping index and error pages.
// It is used in templates.
func (vfs *FS) dir(folderpath string) []File {
	folderpath = path.Clean("./" + strings.TrimPrefix(folderpath, "/"))
	entries, err := fs.ReadDir(vfs, folderpath)
	if err != nil {
		log.Printf("dir: %s", err)
		return nil
	}
	f := make([]File, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == "index.html" || isErrorPage(name) {
			continue
		}
		fm := FrontMatter{
			Title: strings.TrimSuffix(name, path.Ext(name)),
		}
		if fi, err := entry.Info(); err == nil {
			fm.Date = fi.ModTime().Local()
		}
		if !entry.IsDir() && path.Ext(name) == ".html" {
			source := path.Join(folderpath, strings.TrimSuffix(name, ".html")+".md")
			err = vfs.readFrontMatter(source, &fm)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Printf("dir: %s", err)
			}
		}
		f = append(f, File{FrontMatter: fm, Filename: name})
	}
	return f
}

// sortByTime sorts the files newest first.
func sortByTime(f []File) []File {
	sort.SliceStable(f, func(i, j int) bool { return f[j].FrontMatter.Date.Before(f[i].FrontMatter.Date) })
	return f
}

// sortByName sorts the files by name.
func sortByName(f []File) []File {
	sort.SliceStable(f, func(i, j int) bool { return f[i].Filename < f[j].Filename })
	return f
}

// reverse reverses the order of the file list.
func reverse(f []File) []File {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
	return f
}

// filter keeps the files whose names match one of the patterns.
func filter(f []File, pat ...string) []File {
	var r []File
	for i := range f {
		if match(f[i].Filename, pat...) {
			r = append(r, f[i])
		}
	}
	return r
}

// match uses path.Match to test s against the patterns.
func match(s string, pat ...string) bool {
	for i := range pat {
		b, err := path.Match(pat[i], s)
		if err != nil {
			log.Printf("match: %s", err)
		}
		if b {
			return true
		}
	}
	return false
}
