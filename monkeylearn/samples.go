package monkeylearn

import (
	"encoding/json"

	"github.com/s0up4200/monkeylearn-go/api"
)

// TagRef references the tags of a training sample either by numeric id or
// by tag path. Build it with TagsByID or TagsByPath.
type TagRef struct {
	ids    []int64
	paths  []string
	byPath bool
}

// TagsByID references tags by their numeric ids.
func TagsByID(ids ...int64) TagRef {
	return TagRef{ids: ids}
}

// TagsByPath references tags by name, e.g. "Negative" or "Food:Quality".
func TagsByPath(paths ...string) TagRef {
	return TagRef{paths: paths, byPath: true}
}

// ByPath reports whether the reference uses tag paths.
func (t TagRef) ByPath() bool {
	return t.byPath
}

// IsZero reports whether no tag is referenced.
func (t TagRef) IsZero() bool {
	return len(t.ids) == 0 && len(t.paths) == 0
}

// MarshalJSON encodes the reference as a list of ids or a list of paths.
func (t TagRef) MarshalJSON() ([]byte, error) {
	if t.byPath {
		return json.Marshal(t.paths)
	}
	if t.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.ids)
}

// Sample is one training text uploaded to a classifier.
type Sample struct {
	Text  string   `json:"text"`
	Tags  TagRef   `json:"tags,omitzero"`
	Marks []string `json:"marks,omitempty"`
}

func validateSamples(samples []Sample) error {
	if len(samples) == 0 {
		return api.NewValidationError("data", "must contain at least one sample")
	}
	for i, s := range samples {
		if s.Text == "" {
			return api.NewValidationError("data", "empty text at position %d", i)
		}
		if s.Tags.byPath {
			for _, p := range s.Tags.paths {
				if p == "" {
					return api.NewValidationError("tags", "empty tag path in sample %d", i)
				}
			}
		}
	}
	return nil
}
