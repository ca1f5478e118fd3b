package router_test

import (
	"museum/config"
	"museum/transport/http/router"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "styles.css"), []byte("body{}"), 0o600))

	cfg := &config.Config{}
	cfg.App.StaticDir = dir

	r := router.New(cfg, router.DomainHandlers{})

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	tests := []struct {
		path     string
		wantCode int
	}{
		{path: "/css/styles.css", wantCode: http.StatusOK},
		{path: "/css/", wantCode: http.StatusNotFound},
		{path: "/css", wantCode: http.StatusNotFound},
		{path: "/missing.js", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
