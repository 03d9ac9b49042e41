// Package api handles incoming HTTP requests for projects. It decodes and
// validates request bodies, calls the project service, translates between
// wire shapes and domain values, and converts every failure into an
// application/problem+json body (RFC 7807) in one place, HandleAPIError.
package api
