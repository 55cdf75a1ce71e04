// Package migrations embeds the schema for every supported store.
package migrations

import "embed"

// Postgres holds the migrations applied to PostgreSQL, under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the migrations applied to the embedded store, under sqlite/.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
