package services

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when an entity id is absent from the document.
var ErrNotFound = errors.New("not found")

// mergeJSON applies a shallow JSON merge of patch over existing and decodes
// the result into out. This reproduces the document server's PUT semantics:
// top-level fields from the body replace the stored ones, everything else is
// kept. Unknown fields in the patch are dropped by the typed decode.
func mergeJSON(existing interface{}, patch []byte, out interface{}) error {
	base, err := json.Marshal(existing)
	if err != nil {
		return err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return err
	}
	for k, v := range overlay {
		merged[k] = v
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
