package cmd

import (
	"github.com/go-drift/declare/cmd/declare/internal/config"
	"github.com/go-drift/declare/pkg/base"
	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/manifest"
)

// loadRegistry resolves the project configuration, installs the log handler
// and builds the manifest against a fresh kit.
func loadRegistry() (*config.Resolved, *manifest.Registry, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Resolve(root, config.Options{
		Manifest: manifestFlag,
		Verbose:  verboseFlag,
	})
	if err != nil {
		return nil, nil, &errors.DeclareError{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})

	kit, err := base.New()
	if err != nil {
		return nil, nil, err
	}
	reg, err := manifest.Load(cfg.Manifest, kit)
	if err != nil {
		return nil, nil, err
	}
	if reg.Namespace == "" {
		reg.Namespace = cfg.Namespace
	}
	return cfg, reg, nil
}
