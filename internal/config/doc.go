// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (TRADUZ_ prefix)
//  2. Command-line flags
//  3. YAML config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetConfig], which returns the fully merged and
// validated [Config] for the interactive client.
//
// Provider credentials (API keys, the selected remote deck) are not part of
// this package: they are user state written during the setup flow and live in
// the providers file managed by the store package.
package config
