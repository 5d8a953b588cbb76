// Package middleware contains HTTP middleware for the task API.
package middleware
