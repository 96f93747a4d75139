// Package clouds assembles the built-in provider catalogs.
package clouds

import (
	"cloudforge/clouds/aws"
	"cloudforge/clouds/azure"
	"cloudforge/clouds/gcp"
	"cloudforge/clouds/hetzner"
	"cloudforge/core/catalog"
)

// RegisterBuiltin adds every built-in provider table to a builder
func RegisterBuiltin(b *catalog.Builder) {
	aws.Register(b)
	azure.Register(b)
	gcp.Register(b)
	hetzner.Register(b)
}

// BuiltinSnapshot seals a snapshot containing only the built-in tables
func BuiltinSnapshot() *catalog.Snapshot {
	b := catalog.NewBuilder()
	RegisterBuiltin(b)
	return b.Build()
}
