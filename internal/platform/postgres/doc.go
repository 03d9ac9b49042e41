// Package postgres provides the PostgreSQL implementation of store.ProjectStore.
// It handles query execution, mapping between rows and domain.Project values,
// translation of driver errors into store errors, and the embedded schema
// migrations for the projects table.
package postgres
