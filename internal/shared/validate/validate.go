package validate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors flattens an ozzo-validation error into the field -> messages
// map carried by Result.ValidationErrors. A nil error yields nil.
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return map[string][]string{"request": {err.Error()}}
	}

	out := make(map[string][]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		out[field] = []string{fieldErr.Error()}
	}
	return out
}
