// Package middleware contains the HTTP middleware of the project API.
package middleware
