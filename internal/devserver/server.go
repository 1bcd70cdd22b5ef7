// Package devserver serves a compiled WASM bundle with history-API fallback,
// so path-mode routes like /topics survive a page reload.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// NewServer builds the HTTP handler for cfg.
func NewServer(cfg Config, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	b := &bundle{root: cfg.Root, index: cfg.Index, log: log}
	r.Get("/*", b.serve)
	r.Head("/*", b.serve)

	return r
}

type bundle struct {
	root  string
	index string
	log   *logrus.Logger
}

func (b *bundle) serve(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	full := filepath.Join(b.root, filepath.FromSlash(urlPath))

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, b.index)
		info, err = os.Stat(full)
	}

	switch {
	case err == nil:
		b.serveFile(w, r, full, info)
	case errors.Is(err, os.ErrNotExist) && isClientRoute(r, urlPath):
		// Client-side route: hand it to the app.
		indexPath := filepath.Join(b.root, b.index)
		indexInfo, statErr := os.Stat(indexPath)
		if statErr != nil {
			b.log.WithError(statErr).Error("index page missing")
			http.Error(w, "index page missing", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		b.serveFile(w, r, indexPath, indexInfo)
	case errors.Is(err, os.ErrNotExist):
		http.NotFound(w, r)
	default:
		b.log.WithError(err).WithField("path", urlPath).Error("stat failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// assetExts are extensions that name bundle files rather than routes, so a
// miss on them is a real 404.
var assetExts = map[string]bool{
	".css": true, ".gif": true, ".html": true, ".ico": true, ".jpeg": true,
	".jpg": true, ".js": true, ".json": true, ".map": true, ".png": true,
	".svg": true, ".txt": true, ".wasm": true, ".woff": true, ".woff2": true,
}

// isClientRoute reports whether a missing path should load the app.
// Page loads ask for HTML, which covers slugs such as /topics/node.js.
func isClientRoute(r *http.Request, urlPath string) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		return true
	}
	return !assetExts[strings.ToLower(path.Ext(urlPath))]
}

func (b *bundle) serveFile(w http.ResponseWriter, r *http.Request, name string, info os.FileInfo) {
	f, err := os.Open(name)
	if err != nil {
		b.log.WithError(err).WithField("file", name).Error("open failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	if filepath.Ext(name) == ".wasm" {
		w.Header().Set("Content-Type", "application/wasm")
	}
	if filepath.Base(name) == b.index {
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			}).Debug("request")
		})
	}
}

// Run serves cfg until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, log *logrus.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewServer(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr, "root": cfg.Root}).Info("serving bundle")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
