package raw

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// validate checks struct tags and flattens field failures into one error.
func validate(v any) error {
	err := validator.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("field %s fails %q", fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}
