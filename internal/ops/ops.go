// Package ops implements the caller-facing operations of the query server:
// random quote, add quote, add profile, mood-matched quote, and stats.
// Each operation takes plain scalar inputs and returns either a single
// record, a validation failure, or a "no match, substituting" result.
package ops

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/crashlar/quotesforever/internal/errors"
)

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator, configured to report field
// names from json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// checkInput validates an input struct. On failure it returns a rejection
// naming the offending fields; no write occurs after a rejection.
func checkInput(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewInternal(err)
	}

	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fe.Field())
	}
	return errors.NewValidation(fields)
}
