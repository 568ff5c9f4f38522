package migrations

import "embed"

// FS contains embedded SQLite migrations for exported game data.
//
//go:embed *.sql
var FS embed.FS
