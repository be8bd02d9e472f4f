// migrations/migrations.go

// Package migrations embeds the SQL schema so binaries can migrate without
// shipping a migrations directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
