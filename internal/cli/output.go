package cli

import (
	"encoding/json"
	"io"
)

// printJSON writes v as indented JSON. ObjectIDs render as hex strings.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
