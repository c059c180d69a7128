// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environ, a KEY -> value map in the
// shape produced by env.ToMap. Nested sections take their prefix from the
// `envPrefix` tags, so APP_USER_ID lands in App.UserID.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}

// processEnv is the environment of the running process.
func processEnv() map[string]string {
	return env.ToMap(os.Environ())
}
