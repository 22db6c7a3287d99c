// Package cartscan holds static assets that ship inside the binary.
package cartscan

import "embed"

// Migrations contains the goose migration files applied by the migrate
// subcommand.
//
//go:embed migrations
var Migrations embed.FS
