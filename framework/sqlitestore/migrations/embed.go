package migrations

import "embed"

// FS contains embedded SQLite migrations for framework storage.
//
//go:embed *.sql
var FS embed.FS
