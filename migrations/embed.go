// Package migrations embeds the seed target schema so it can be applied by
// `agentseed seed --target postgres --migrate` regardless of working directory.
package migrations

import "embed"

// FS holds every .sql file in this directory, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
