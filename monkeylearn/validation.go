package monkeylearn

import (
	"strings"

	"github.com/s0up4200/monkeylearn-go/api"
)

// orderByFields are the fields list endpoints can be sorted by.
var orderByFields = map[string]struct{}{
	"id":          {},
	"name":        {},
	"description": {},
	"created":     {},
	"updated":     {},
}

// ValidateBatchSize checks that size is within [MinBatchSize, MaxBatchSize].
func ValidateBatchSize(size int) error {
	if size < MinBatchSize || size > MaxBatchSize {
		return api.NewValidationError("batch_size", "must be between %d and %d, got %d", MinBatchSize, MaxBatchSize, size)
	}
	return nil
}

// ValidateOrderBy checks a list of sort fields. A leading '-' sorts
// descending; a field may appear only once regardless of direction.
func ValidateOrderBy(fields []string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		name := strings.TrimPrefix(field, "-")
		if _, ok := orderByFields[name]; !ok {
			return api.NewValidationError("order_by", "unknown field %q", field)
		}
		if _, dup := seen[name]; dup {
			return api.NewValidationError("order_by", "duplicated field %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func validateInputs(inputs []Input) error {
	if len(inputs) == 0 {
		return api.NewValidationError("data", "must contain at least one item")
	}
	for i, in := range inputs {
		if in.Text == "" {
			return api.NewValidationError("data", "empty text at position %d", i)
		}
	}
	return nil
}

func validateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return api.NewValidationError(field, "must not be empty")
	}
	return nil
}
