// Package ciutil provides utilities for CI and environment-specific functionality.
//
// It centralizes CI detection and the environment variables the test
// helpers read, so integration tests behave the same on a laptop (skip when
// no database is configured) and in CI (fail loudly instead of skipping).
package ciutil
