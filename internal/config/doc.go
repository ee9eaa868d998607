// Package config loads and normalizes the rppedit configuration file.
//
// Configuration lives in TOML at ~/.config/rppedit/config.toml (or a path
// given explicitly, or an rppedit.toml in the working directory). Absent
// files are not an error: defaults apply.
package config
