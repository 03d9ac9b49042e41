// Package sqlite provides a file-backed implementation of store.ProjectStore
// on top of mattn/go-sqlite3, for single-node deployments and local
// development without a PostgreSQL server.
package sqlite
