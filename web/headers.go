package web

import (
	"net/http"
	"strings"
	"time"
)

// FragmentPrefix is the URL prefix under which page components are served on their own.
const FragmentPrefix = "/_fragments/"

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// isRendered reports whether the path is produced at request time rather than
// read from disk. Rendered content carries the current year, so it expires sooner.
func isRendered(p string) bool {
	return strings.HasSuffix(p, "/") ||
		strings.HasSuffix(p, ".html") ||
		p == "/sitemap.txt" ||
		strings.HasPrefix(p, FragmentPrefix)
}

// ExpiresHandler adds the Expires header, choosing expires for rendered content
// and staticExpires for everything else. A zero duration sends no header.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isRendered(r.URL.Path) {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}
