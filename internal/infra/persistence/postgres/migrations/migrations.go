// Package migrations embeds the SQL schema migrations so they ship inside the binary.
package migrations

import "embed"

// Migrations holds the golang-migrate up/down files.
//
//go:embed *.sql
var Migrations embed.FS
