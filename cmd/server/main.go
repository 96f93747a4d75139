// Package main runs the cloudforge API server.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"cloudforge/api"
	"cloudforge/clouds"
	"cloudforge/core/catalog"
	"cloudforge/core/engine"
	"cloudforge/core/policy"
	"cloudforge/core/resolve"
	"cloudforge/internal/config"
	"cloudforge/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	b := catalog.NewBuilder()
	if cfg.Catalog.Builtin {
		clouds.RegisterBuiltin(b)
	}
	for _, path := range cfg.Catalog.Paths {
		if err := catalog.LoadInto(b, path); err != nil {
			logging.Fatal("loading catalog", zap.Error(err))
		}
	}
	snapshot := b.Build()

	pol := policy.Default()
	if cfg.PolicyPath != "" {
		loaded, err := policy.Load(cfg.PolicyPath)
		if err != nil {
			logging.Fatal("loading policy", zap.Error(err))
		}
		pol = loaded
	}

	enabled := cfg.EnabledProviders
	if len(enabled) == 0 {
		enabled = snapshot.Providers()
	}

	eng := engine.New(resolve.New(snapshot), enabled, pol, policy.OverridesFromEnviron(os.Environ()))

	server := api.NewServer("0.1.0", eng)
	if err := server.ListenAndServe(*addr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
