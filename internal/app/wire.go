package app

import (
	"go.uber.org/zap"

	"paperwire/internal/domain"
	"paperwire/internal/services/transfer"
)

// Wire bundles the resolved parameters and services for the CLI.
type Wire struct {
	Params   domain.Params
	Transfer domain.Transfer
	Logger   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	svc, err := transfer.New(p, cfg.Compress, logger)
	if err != nil {
		return nil, err
	}

	return &Wire{Params: p, Transfer: svc, Logger: logger}, nil
}
