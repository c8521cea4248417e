package site

import (
	"strings"
)

// hiddenFiles are top-level entries never served.
var hiddenFiles = []string{
	"template",
	ConfigFile,
}

// isHiddenFile reports whether the top-level name is hidden from outside view.
func isHiddenFile(name string) bool {
	for _, s := range hiddenFiles {
		if name == s {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isErrorPage reports whether the file is one of the error pages served by the web layer.
func isErrorPage(name string) bool {
	return name == "404.html" || name == "500.html"
}
