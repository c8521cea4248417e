// Command intentdocs serves the Intent documentation site.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/tryintent/intentdocs/site"
)

func main() {
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the documentation site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long rendered pages are cached.")
	)
	flag.Parse()
	flagenv.Parse()

	// Setup groupcache (no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	fileSystem, err := site.New(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot load site %q: %s", *fRoot, err)
		os.Exit(1)
	}
	cfg := fileSystem.Config()
	log.Printf("Loaded site %q from %q", cfg.Title, *fRoot)

	cachedFileSystem := cachefs.New(fileSystem, &cachefs.Config{
		GroupName:   "intentdocs",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})

	srv := http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           newRouter(fileSystem, cachedFileSystem),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
		os.Exit(2)
	}
	log.Print("Goodbye.")
}
