// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The config file location can be overridden with the MRT_CONFIG environment
// variable.
package config
