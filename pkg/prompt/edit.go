package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-cmsfields/pkg/fieldset"
)

// Edit asks for a new value for every field in order and returns the updated
// set. Number fields only accept numeric input and keep their kind; an empty
// answer keeps the current value.
func Edit(ctx context.Context, driver PromptDriver, set fieldset.FieldSet) (fieldset.FieldSet, error) {
	if driver == nil {
		return fieldset.FieldSet{}, fmt.Errorf("prompt: driver is required")
	}
	if set.Len() == 0 {
		if err := driver.Info(ctx, "No fields to edit."); err != nil {
			return fieldset.FieldSet{}, err
		}
		return set, nil
	}

	updated := set.Clone()
	for _, field := range set.Fields() {
		cfg := InputConfig{
			Message: field.Name,
			Default: field.Value.String(),
			Help:    fmt.Sprintf("%s field", field.Value.Kind()),
		}
		if field.Value.IsNumber() {
			cfg.Validator = validateNumber
		}

		answer, err := driver.Input(ctx, cfg)
		if err != nil {
			return fieldset.FieldSet{}, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}

		value, err := coerce(field.Value, answer)
		if err != nil {
			return fieldset.FieldSet{}, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		updated.Set(field.Name, value)
	}
	return updated, nil
}

func coerce(current fieldset.Value, answer string) (fieldset.Value, error) {
	if !current.IsNumber() {
		return fieldset.Text(answer), nil
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return current, nil
	}
	return fieldset.NumberLiteral(trimmed)
}

func validateNumber(answer string) error {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil
	}
	if _, err := fieldset.NumberLiteral(trimmed); err != nil {
		return fmt.Errorf("%q is not a number", answer)
	}
	return nil
}
