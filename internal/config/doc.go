// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml and TODO_-prefixed environment
// variables. It provides type-safe access to server, database and cache
// settings while keeping configuration details out of business logic.
package config
