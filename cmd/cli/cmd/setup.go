// Package cmd - Shared engine assembly
package cmd

import (
	"os"

	"cloudforge/clouds"
	"cloudforge/core/catalog"
	"cloudforge/core/engine"
	"cloudforge/core/policy"
	"cloudforge/core/resolve"
	"cloudforge/core/types"
	"cloudforge/internal/config"
)

// buildEngine assembles the catalog snapshot, policy, and override
// sources according to the active configuration
func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()

	b := catalog.NewBuilder()
	if cfg.Catalog.Builtin {
		clouds.RegisterBuiltin(b)
	}
	for _, path := range cfg.Catalog.Paths {
		if err := catalog.LoadInto(b, path); err != nil {
			return nil, err
		}
	}
	snapshot := b.Build()

	pol := policy.Default()
	if cfg.PolicyPath != "" {
		loaded, err := policy.Load(cfg.PolicyPath)
		if err != nil {
			return nil, err
		}
		pol = loaded
	}

	enabled := cfg.EnabledProviders
	if len(enabled) == 0 {
		enabled = snapshot.Providers()
	}

	src := policy.OverridesFromEnviron(os.Environ())
	resolver := resolve.New(snapshot)
	return engine.New(resolver, enabled, pol, src), nil
}

// parseProviders converts flag values to typed providers
func parseProviders(names []string) []types.Provider {
	out := make([]types.Provider, 0, len(names))
	for _, n := range names {
		out = append(out, types.Provider(n))
	}
	return out
}
