// Package shared holds the HTTP plumbing used by handlers and middleware:
// JSON and problem+json response writers, request body decoding, and the
// request trace id carried in the context.
package shared
