package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeStrict parses a JSON request body rejecting any field outside the
// target struct. Fiber's BodyParser silently drops unknown fields, which would
// let malformed write payloads through.
func DecodeStrict(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		if field, ok := unknownField(err); ok {
			return fmt.Errorf("property %s should not exist", field)
		}
		return err
	}
	// Trailing garbage after the JSON document is also malformed input.
	if dec.More() {
		return fmt.Errorf("unexpected content after JSON body")
	}
	return nil
}

func unknownField(err error) (string, bool) {
	msg := err.Error()
	const prefix = "json: unknown field "
	if strings.HasPrefix(msg, prefix) {
		return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
	}
	return "", false
}
