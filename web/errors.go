package web

import (
	"io/fs"
	"log"
	"net/http"
)

// ErrorHandler captures 404 and 500 responses from h and, when the file system
// has a /404.html or /500.html page, serves that page in their place.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(&errorWriter{ResponseWriter: w, fsys: fsys}, r)
	})
}

// errorPage returns the name of the page replacing a response with the given status.
func errorPage(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "404.html"
	case http.StatusInternalServerError:
		return "500.html"
	}
	return ""
}

// errorWriter swallows the body of an error response once it has written
// the replacement page.
type errorWriter struct {
	http.ResponseWriter
	fsys     fs.FS
	replaced bool
	err      error
}

func (w *errorWriter) Write(b []byte) (int, error) {
	if w.replaced {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorWriter) WriteHeader(statusCode int) {
	if name := errorPage(statusCode); name != "" {
		b, err := fs.ReadFile(w.fsys, name)
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Del("X-Content-Type-Options")
			w.Header().Del("Content-Length")
			w.ResponseWriter.WriteHeader(statusCode)
			w.replaced = true
			_, w.err = w.ResponseWriter.Write(b)
			return
		}
		if statusCode == http.StatusInternalServerError {
			log.Printf("ErrorHandler: cannot read %s: %s", name, err)
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
