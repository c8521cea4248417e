package main

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tryintent/intentdocs/site"
	"github.com/tryintent/intentdocs/web"
)

// newRouter wires the fragment endpoints and the file server. Files are read
// from files, which is normally a cached view of docs.
func newRouter(docs *site.FS, files fs.FS) http.Handler {
	cfg := docs.Config()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(func(h http.Handler) http.Handler {
		return web.HeaderHandler(web.ExpiresHandler(h, time.Duration(cfg.Expires), time.Duration(cfg.StaticExpires)), cfg.Headers)
	})
	r.Use(gziphandler.GzipHandler)

	r.Route(strings.TrimSuffix(web.FragmentPrefix, "/"), func(r chi.Router) {
		r.Method(http.MethodGet, "/community", web.FragmentHandler(func(req *http.Request) ([]byte, error) {
			return docs.Community(req.URL.Query().Get("page"))
		}))
		r.Method(http.MethodGet, "/footer", web.FragmentHandler(func(*http.Request) ([]byte, error) {
			return docs.Footer()
		}))
	})
	r.Handle("/*", web.ErrorHandler(http.FileServer(http.FS(files)), files))
	return r
}
