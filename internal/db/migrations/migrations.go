// Package migrations embeds the goose SQL migrations so the server binary
// can run them at startup without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
