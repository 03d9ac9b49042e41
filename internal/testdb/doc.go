// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests using it are skipped unless DATABASE_URL is set, and each
// test runs inside a transaction that is rolled back afterwards.
package testdb
