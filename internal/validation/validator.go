package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ehatamm/project/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Field names as they appear on the wire and in fieldErrors.
const (
	FieldName           = "name"
	FieldDescription    = "description"
	FieldStartDate      = "startDate"
	FieldEndDate        = "endDate"
	FieldValidDateRange = "validDateRange"
)

const dateRangeTag = "daterange"

// messages maps "<field>.<tag>" to the message reported for that failure.
var messages = map[string]string{
	"name.notblank":            "Project name is required",
	"name.min":                 "Name must be between 3 and 100 characters",
	"name.max":                 "Name must be between 3 and 100 characters",
	"description.max":          "Description cannot exceed 1000 characters",
	"startDate.required":       "Start date is required",
	"endDate.required":         "End date is required",
	"validDateRange.daterange": "End date must be after start date",
}

// Validator checks project inputs against the project rules.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the project rules registered.
func New() *Validator {
	v := validator.New()

	// Report fields by their JSON name so messages line up with the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// ALLOW-PANIC: registration only fails on programmer error
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}

	v.RegisterStructValidation(dateRangeRule, domain.ProjectInput{})

	return &Validator{validate: v}
}

// dateRangeRule enforces endDate > startDate when both dates are present.
func dateRangeRule(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(domain.ProjectInput)
	if !ok {
		return
	}
	if !in.HasValidDateRange() {
		sl.ReportError(in.EndDate, FieldValidDateRange, "ValidDateRange", dateRangeTag, "")
	}
}

// ValidateProject checks in against every rule. It returns nil when the input
// is valid and a *domain.ValidationError listing each violated field otherwise.
func (v *Validator) ValidateProject(in domain.ProjectInput) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate project input: %w", err)
	}

	var verr *domain.ValidationError
	for _, fe := range fieldErrs {
		field := fe.Field()
		msg := messageFor(field, fe.Tag())
		if verr == nil {
			verr = domain.NewValidationError(field, msg)
			continue
		}
		// The first failing tag per field wins; validator stops there anyway.
		if _, seen := verr.Fields[field]; seen {
			continue
		}
		verr.Add(field, msg)
	}
	if verr == nil {
		return fmt.Errorf("validate project input: %w", err)
	}
	return verr
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}
