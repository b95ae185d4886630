// Package embedded compiles the perfume dataset into the binary.
package embedded

import (
	"embed"
)

// FS embeds the catalog yaml files at build time: brand definitions and the
// perfume dataset with brand references.
//
//go:embed catalog/*
var FS embed.FS
