// Package domain contains the Project entity, the caller-supplied input it is
// built from, and the validation error shape shared by every layer. It has no
// knowledge of HTTP or of the storage backend.
package domain
