package router

import (
	"museum/config"
	"museum/internal/handlers/museum"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Museum museum.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	StaticDir      string
}

// SetupRoutes mounts the pages and serves StaticDir at the site root for everything else.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Museum.Router(router)

	router.Get("/*", staticFiles(r.StaticDir).ServeHTTP)
}

func New(cfg *config.Config, domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
		StaticDir:      cfg.App.StaticDir,
	}
}

// staticFiles serves files from dir without directory listings.
func staticFiles(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)

			return
		}

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path))))
		if err == nil && info.IsDir() {
			http.NotFound(w, r)

			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
