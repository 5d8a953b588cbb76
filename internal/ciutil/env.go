package ciutil

import (
	"log/slog"
	"net/url"
	"os"
)

// Common environment variable names used across the codebase.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Database connection environment variables
	EnvTestDatabaseURL = "TODO_TEST_DATABASE_URL" // Preferred name
	EnvDatabaseURL     = "DATABASE_URL"
)

const maskedPassword = "xxxxx"

var ciEnvVars = []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI}

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty environment variable
// from the provided list. If no environment variables are set, it returns the defaultValue.
// Using any name but the first logs a warning.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Warn("Using fallback environment variable",
					slog.String("used_var", envVar),
					slog.String("preferred_var", envVars[0]),
					slog.String("value", MaskSensitiveValue(val)))
			}
			return val
		}
	}
	return defaultValue
}

// GetTestDatabaseURL returns the database URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
}

// MaskSensitiveValue hides the password of a connection URL so it can be logged.
// Values that are not URLs with credentials are returned unchanged.
func MaskSensitiveValue(value string) string {
	u, err := url.Parse(value)
	if err != nil || u.User == nil {
		return value
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		return value
	}
	u.User = url.UserPassword(u.User.Username(), maskedPassword)
	return u.String()
}
