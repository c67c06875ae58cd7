package record

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("record: invalid record")

// validate is shared; validator.Validate is safe for concurrent use.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateRecord, Record{})
}

// validateRecord checks the cross-field rules tags cannot express: start and
// goal lie inside the grid, and PathLength agrees with Path.
func validateRecord(sl validator.StructLevel) {
	r := sl.Current().Interface().(Record)
	inside := func(row, col int) bool {
		return row >= 0 && row < r.Rows && col >= 0 && col < r.Cols
	}
	if !inside(r.Start.Row, r.Start.Col) {
		sl.ReportError(r.Start, "Start", "Start", "inbounds", "")
	}
	if !inside(r.Goal.Row, r.Goal.Col) {
		sl.ReportError(r.Goal, "Goal", "Goal", "inbounds", "")
	}
	want := 0
	if len(r.Path) > 0 {
		want = len(r.Path) - 1
	}
	if r.PathLength != want {
		sl.ReportError(r.PathLength, "PathLength", "PathLength", "pathlen", "")
	}
	if r.Found != (len(r.Path) > 0) {
		sl.ReportError(r.Found, "Found", "Found", "found", "")
	}
}

// Validate checks r against its struct tags and cross-field rules.
func Validate(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil", ErrInvalid)
	}
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
