// Package service contains the application use cases for projects. It
// orchestrates validation and the storage gateway (defined in internal/store)
// and translates storage failures into service errors.
//
// Error handling principles:
//  1. Expected conditions are returned as typed errors: *domain.ValidationError
//     (matches domain.ErrValidation) and *ProjectNotFoundError (matches ErrProjectNotFound).
//  2. Unexpected errors are wrapped in *ProjectServiceError.
//  3. Callers use errors.Is/errors.As; the API layer maps them to status codes once.
package service
