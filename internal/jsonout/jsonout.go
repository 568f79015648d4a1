// Package jsonout formats the CLI's and HTTP surface's --json/response
// bodies: encode with the standard library, then hand the bytes to
// tidwall/pretty for indentation, the same division of labor the teacher
// itself relies on for JSON polish rather than hand-rolled indentation.
package jsonout

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

// Marshal encodes v to indented JSON.
func Marshal(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return pretty.Pretty(raw), nil
}

// Plain is Marshal as a string, with the trailing newline pretty.Pretty
// appends trimmed off.
func Plain(v interface{}) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(data)
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s, nil
}

// ErrorEnvelope is the shape a spliceerr.Error is rendered into for CLI
// --json output. HTTP error responses are built separately by
// httpapi.writeError.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Payload string `json:"payload,omitempty"`
}
