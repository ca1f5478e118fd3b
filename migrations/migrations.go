// Package migrations embeds the SQL schema files applied by helper.Runner.
package migrations

import "embed"

// SQLite is the directory name of the SQLite migrations inside FS.
const SQLite = "sqlite"

//go:embed sqlite/*.sql
var FS embed.FS
