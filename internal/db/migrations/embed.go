// Package migrations embeds goose SQL migrations, one directory per dialect.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directories inside FS.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
