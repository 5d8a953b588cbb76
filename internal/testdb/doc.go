// Package testdb provides utilities specifically for database integration tests.
//
// Open connects to the database named by TODO_TEST_DATABASE_URL, applies the
// embedded schema and registers cleanup. Without a configured database it
// skips the test locally and fails it in CI.
package testdb
