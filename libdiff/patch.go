package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/h5dump-format/h5dump/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning the JSON boundary
// index of from into that of to.
func MergePatch(from, to *parse.Dump) ([]byte, error) {
	a, err := json.Marshal(from.Index)
	if err != nil {
		return nil, fmt.Errorf("error encoding index: %w", err)
	}
	b, err := json.Marshal(to.Index)
	if err != nil {
		return nil, fmt.Errorf("error encoding index: %w", err)
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// ApplyMergePatch applies patch to the boundary index of d and returns the
// resulting index.  d is not modified.
func ApplyMergePatch(d *parse.Dump, patch []byte) (map[string]parse.Boundary, error) {
	a, err := json.Marshal(d.Index)
	if err != nil {
		return nil, fmt.Errorf("error encoding index: %w", err)
	}
	out, err := jsonpatch.MergePatch(a, patch)
	if err != nil {
		return nil, fmt.Errorf("error applying merge patch: %w", err)
	}
	res := map[string]parse.Boundary{}
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("error decoding patched index: %w", err)
	}
	return res, nil
}
