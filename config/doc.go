// Package config handles application configuration loading and validation.
//
// Configuration is read from a YAML file (config.yml by default) with SIRI_RELAY_*
// environment variables taking precedence, then validated using struct tags.
// Every setting has a default, so the Lambda functions can run from the environment alone.
package config
