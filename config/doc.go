// Package config holds runtime settings for the tripkeeper client:
// journal API location, transport timeouts, token lease, and log level.
// Values come from the environment with built-in defaults.
package config
