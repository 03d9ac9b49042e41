package api

import (
	"errors"
	"net/http"

	"github.com/ehatamm/project/internal/api/shared"
	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/service"
)

// ProblemBaseURI prefixes every problem type.
const ProblemBaseURI = "/problems"

// Problem types returned by the API.
const (
	ProblemTypeProjectNotFound = ProblemBaseURI + "/project-not-found"
	ProblemTypeValidation      = ProblemBaseURI + "/validation-error"
	ProblemTypeInvalidArgument = ProblemBaseURI + "/invalid-argument"
	ProblemTypeInternal        = ProblemBaseURI + "/internal-error"
)

const (
	validationDetail = "Validation failed for one or more fields"
	internalDetail   = "An unexpected error occurred"
)

// ErrInvalidArgument marks a request that could not be interpreted at all:
// a malformed body or a path id that is not an integer.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError carries a caller-facing message for ErrInvalidArgument.
type InvalidArgumentError struct {
	Message string
	Err     error
}

// NewInvalidArgumentError creates an InvalidArgumentError. err is kept for
// logging and is never shown to the caller.
func NewInvalidArgumentError(message string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message, Err: err}
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// MapErrorToStatusCode maps internal errors to HTTP status codes. Anything
// unrecognized is a 500 so internal failures are never mistaken for client errors.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// problemFor builds the problem body for err. The status comes from
// MapErrorToStatusCode; the category, title and detail follow from it.
// Only messages written for callers end up in Detail.
func problemFor(err error) shared.Problem {
	p := shared.Problem{Status: MapErrorToStatusCode(err)}

	switch p.Status {
	case http.StatusNotFound:
		p.Type = ProblemTypeProjectNotFound
		p.Title = "Project Not Found"
		p.Detail = "Project not found"
		var nf *service.ProjectNotFoundError
		if errors.As(err, &nf) {
			p.Detail = nf.Error()
		}
	case http.StatusBadRequest:
		var verr *domain.ValidationError
		var iae *InvalidArgumentError
		switch {
		case errors.Is(err, domain.ErrValidation):
			p.Type = ProblemTypeValidation
			p.Title = "Validation Error"
			p.Detail = validationDetail
			if errors.As(err, &verr) {
				p.FieldErrors = verr.Fields
			}
		case errors.As(err, &iae):
			p.Type = ProblemTypeInvalidArgument
			p.Title = "Invalid Argument"
			p.Detail = iae.Message
		default:
			p.Type = ProblemTypeInvalidArgument
			p.Title = "Invalid Argument"
			p.Detail = "Invalid argument"
		}
	default:
		p.Type = ProblemTypeInternal
		p.Title = "Internal Server Error"
		p.Detail = internalDetail
	}
	return p
}

// HandleAPIError answers a failed request with the matching problem body.
// Every handler funnels its errors through here, as does the panic recoverer.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithProblem(w, r, problemFor(err), err)
}
