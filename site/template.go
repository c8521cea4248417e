package site

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tryintent/intentdocs/layout"
)

//go:embed default.html
var defaultTemplate string

// getTemplates returns the current templates.
func (vfs *FS) getTemplates() *template.Template {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl
}

// LoadTemplates parses the templates again, picking up changes to the template folder.
func (vfs *FS) LoadTemplates() error {
	_, err := vfs.loadTemplates()
	return err
}

// loadTemplates loads and parses the HTML templates, returning true if custom templates were found.
func (vfs *FS) loadTemplates() (bool, error) {
	funcMap := template.FuncMap{
		"dir":        vfs.dir,
		"sortbyname": sortByName,
		"sortbytime": sortByTime,
		"reverse":    reverse,
		"filter":     filter,
		"match":      match,
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"humanize":   humanize.Time,
		"now":        vfs.now,
		"copyright":  func() string { return layout.Copyright(vfs.now()) },
	}
	vfs.tplMutex.Lock()
	defer vfs.tplMutex.Unlock()
	fi, err := fs.Stat(vfs.fs, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("intentdocs").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return false, fmt.Errorf("loadTemplates: %w", err)
		}
		vfs.tpl = tpl
		return false, nil
	}
	// Custom templates may override the defaults.
	tpl, err := template.New("intentdocs").Funcs(funcMap).Parse(defaultTemplate)
	if err == nil {
		tpl, err = tpl.ParseFS(vfs.fs, "template/*.html")
	}
	if err != nil {
		return true, fmt.Errorf("loadTemplates: %w", err)
	}
	vfs.tpl = tpl
	return true, nil
}
