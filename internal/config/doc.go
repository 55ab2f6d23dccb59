// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the TIDY_DEFAULT_DIRECTORY environment override. It
// also persists the default-directory preference so the next run offers the
// directory the user last organized.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
