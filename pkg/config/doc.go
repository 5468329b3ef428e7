// Package config loads docprint settings from the embedded defaults, the
// user config file, DOCPRINT_* environment variables and command-line flags,
// in that order of precedence.
package config
