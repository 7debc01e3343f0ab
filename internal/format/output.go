// Package format writes command results for scripts: JSON by default, EDN on request.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Envelope is the top-level shape of every command result.
type Envelope struct {
	Data any `json:"data"`
}

// Write writes v in the requested format ("json", "" or "edn").
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	// Payload text is shown to humans as-is; keep <, > and & readable.
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
