// Package config loads helix settings from YAML, TOML or JSON files and HELIX_*
// environment variables.
package config
