package web

import (
	"log"
	"net/http"
	"strconv"
)

// FragmentHandler serves the HTML returned by render as a page fragment.
// Only GET and HEAD are allowed.
func FragmentHandler(render func(r *http.Request) ([]byte, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		b, err := render(r)
		if err != nil {
			log.Printf("FragmentHandler: %s", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(b)))
		if r.Method == http.MethodHead {
			return
		}
		if _, err = w.Write(b); err != nil {
			log.Printf("FragmentHandler: %s", err)
		}
	})
}
