package config

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the value constraints on cfg
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !stderrors.As(err, &valErrs) {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	details := make(map[string]interface{})
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		key := strings.ToLower(ve.Field())
		msg := formatValidationError(ve)
		details[key] = msg
		messages = append(messages, key+": "+msg)
	}
	sort.Strings(messages)

	return errors.New(errors.ErrConfigValid, "invalid configuration: "+strings.Join(messages, "; ")).
		WithDetails(details)
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", ve.Param(), ve.Value())
	case "required":
		return "required"
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
