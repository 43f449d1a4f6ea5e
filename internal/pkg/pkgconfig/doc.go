// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care where values come from. The Viper implementation layers, from
// highest precedence: command line flags, KEEPERSYNC_* environment variables
// (optionally seeded from a .env file), a config file, and defaults.
package pkgconfig
