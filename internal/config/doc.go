// Package config provides configuration loading, merging, and validation
// facilities for the pickup application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (ambient settings only)
//  2. JSON or YAML config file
//  3. Environment variables (optionally seeded from a dotenv file;
//     *_FILE variables read secrets from mounted files)
//  4. Command-line flags
//
// Credentials never have defaults. [GetAppConfig] fails with an error naming
// every missing field so the process can stop before doing any work.
package config
