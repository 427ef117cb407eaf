package submission

import (
	"bytes"
	"encoding/json"
)

// Marshal renders v as canonical JSON: UTF-8, compact separators, keys in
// lexicographic order, no HTML escaping. The signature is computed over these
// exact bytes, so two processes given equal logical content must produce
// byte-identical output.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Link fields carry URLs with '&'; escaping them would diverge from any
	// canonicalizer that emits raw UTF-8.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline that is not part of the canonical form.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
