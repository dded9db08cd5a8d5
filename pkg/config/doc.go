// Package config loads fontweak's own settings. Layers, lowest first:
// embedded defaults, the user's config.toml, FONTWEAK_ environment variables
// and command-line overrides.
package config
