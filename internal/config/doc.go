// Package config holds the versiontag command configuration: defaults,
// an optional YAML file, and validation.
package config
