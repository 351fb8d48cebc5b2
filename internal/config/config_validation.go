// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Octareno

package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:3000"
	defaultRequestTimeout = 30 * time.Second
)

var errEmptyDatabaseDSN = errors.New("database DSN must be provided")

// applyDefaults fills the fields no configuration source populated.
// The bcrypt cost is left at zero so the service layer can fall back to the
// library default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return errEmptyDatabaseDSN
	}

	return nil
}
