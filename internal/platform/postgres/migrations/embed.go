// Package migrations embeds the goose SQL migrations for the application
// schema so the server binary can bring the database up to date on its own.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
