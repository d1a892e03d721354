// Package migrations embeds the SQL schema files so they apply regardless of
// working directory
package migrations

import "embed"

// FS holds every .sql file in this directory, applied in filename order
//
//go:embed *.sql
var FS embed.FS
