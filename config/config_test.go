package config

import (
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetAltKeys hides bare variables such as HOST that envconfig would read as fallbacks.
func unsetAltKeys(t *testing.T) {
	t.Helper()

	for _, key := range []string{"ENV", "HOST", "PORT", "NAME", "TITLE", "FILE", "TIMEZONE", "STATIC_DIR", "BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefaults(t *testing.T) {
	unsetAltKeys(t)
	t.Setenv("EXTERNAL_HARVARD_API_KEY", "secret")

	var c Config
	require.NoError(t, envconfig.Process("", &c))

	assert.Equal(t, "127.0.0.1", c.Server.Host)
	assert.Equal(t, "3000", c.Server.Port)
	assert.Equal(t, "127.0.0.1:3000", c.Address())
	assert.Equal(t, "./database.db", c.DB.SQLite.Path)
	assert.True(t, c.DB.SQLite.AutoMigrate)
	assert.Equal(t, "static", c.App.StaticDir)
	assert.Equal(t, "Harvard Art Museums", c.App.Title)
	assert.Equal(t, "https://api.harvardartmuseums.org", c.External.Harvard.BaseURL)
	assert.Equal(t, 100, c.External.Harvard.GallerySize)
	assert.False(t, c.App.RateLimiter.Enable)
	assert.Empty(t, c.Cache.Redis.Primary.Host)

	assert.NoError(t, c.Validate())
}

func TestOverrides(t *testing.T) {
	t.Setenv("EXTERNAL_HARVARD_API_KEY", "secret")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_SQLITE_FILE", "/var/lib/museum/comments.db")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	var c Config
	require.NoError(t, envconfig.Process("", &c))

	assert.Equal(t, "0.0.0.0:8080", c.Address())
	assert.Equal(t, "/var/lib/museum/comments.db", c.DB.SQLite.Path)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.App.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	unsetAltKeys(t)
	t.Setenv("EXTERNAL_HARVARD_API_KEY", "")

	var c Config
	require.NoError(t, envconfig.Process("", &c))

	assert.ErrorContains(t, c.Validate(), "APIKey")

	c.External.Harvard.APIKey = "secret"
	c.External.Harvard.BaseURL = "not a url"

	assert.ErrorContains(t, c.Validate(), "BaseURL")
}
