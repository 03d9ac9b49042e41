package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Project is the managed resource: a named activity with a date range.
// ID and the timestamps are owned by the store; callers never set them.
type Project struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartDate   civil.Date `json:"startDate"`
	EndDate     civil.Date `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectInput carries the caller-supplied fields of a create or update
// request. Dates are pointers so that an absent date can be told apart from
// the zero date during validation.
type ProjectInput struct {
	Name        string      `json:"name"        validate:"notblank,min=3,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=1000"`
	StartDate   *civil.Date `json:"startDate"   validate:"required"`
	EndDate     *civil.Date `json:"endDate"     validate:"required"`
}

// HasValidDateRange reports whether EndDate is strictly after StartDate.
// It is true when either date is missing; absence is reported separately.
func (in ProjectInput) HasValidDateRange() bool {
	if in.StartDate == nil || in.EndDate == nil {
		return true
	}
	return in.EndDate.After(*in.StartDate)
}

// NewProject builds an unsaved Project from validated input.
func NewProject(in ProjectInput) *Project {
	p := &Project{}
	p.Apply(in)
	return p
}

// Apply replaces name, description and dates with the values from in.
// ID, CreatedAt and UpdatedAt are left untouched.
func (p *Project) Apply(in ProjectInput) {
	p.Name = in.Name
	p.Description = copyString(in.Description)
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Description = copyString(p.Description)
	return &c
}

// Equal compares every field except the audit timestamps.
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID &&
		p.Name == other.Name &&
		stringPtrEqual(p.Description, other.Description) &&
		p.StartDate == other.StartDate &&
		p.EndDate == other.EndDate
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
