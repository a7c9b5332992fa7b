// Package config handles application configuration loading and validation.
//
// Configuration is read from YAML and validated using struct tags. Values a
// file leaves out keep their defaults, and routing and render settings given
// in an input document take precedence over the ones configured here.
package config
