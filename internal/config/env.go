// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [AppConfig] and its nested types. Fields tagged with the `file`
// option read the named file, which is how secrets mounted by a secret store
// reach the config.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type or a secret file cannot be read).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads variables from a dotenv file into the process
// environment. Variables already present in the environment are kept.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}

// lookupEnvFile resolves the dotenv path: the -env-file flag wins over the
// ENV_FILE variable.
func lookupEnvFile(flags *AppConfig) string {
	if flags != nil && flags.EnvFile != "" {
		return flags.EnvFile
	}

	return os.Getenv("ENV_FILE")
}
