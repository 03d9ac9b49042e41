// Package validation holds the declarative rules a project input must satisfy
// before it may reach storage. Every violated field is reported at once.
package validation
