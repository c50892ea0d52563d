package display

import (
	"encoding/json"
)

// MarshalJSON marshals JSON with compact formatting for machine callers,
// pretty formatting for human-readable output
func MarshalJSON(v any) ([]byte, error) {
	if IsMachineCaller() {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
