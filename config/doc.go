// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, overlaid with TRACESNAP_*
// environment variables (optionally seeded from a .env file) and validated
// using struct tags. Command line flags are applied by the caller on top.
package config
