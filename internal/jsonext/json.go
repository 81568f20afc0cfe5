// Package jsonext holds the strict JSON helpers shared by the parser and the
// command line tool.
package jsonext

import (
	"bytes"
	"encoding/json"

	xjson "github.com/charmbracelet/x/json"
)

// IsValid reports whether data is a single well-formed JSON value.
func IsValid[T string | []byte](data T) bool {
	if len(data) == 0 { // hot path
		return false
	}
	return xjson.IsValid(string(data))
}

// Decode strictly parses data. Numbers are kept as json.Number so that a
// decoded value encodes back to the same digits. The returned error is the
// one produced by encoding/json, unchanged.
func Decode[T string | []byte](data T) (any, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Compact encodes v as compact JSON without HTML escaping.
func Compact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
