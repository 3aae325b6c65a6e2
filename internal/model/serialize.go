package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotStringArray is returned when a JSON payload is valid JSON but not an
// array of strings.
var ErrNotStringArray = errors.New("expected a JSON array of strings")

// EncodeLines joins entries with "\n". N entries produce N-1 separators and
// no trailing newline; an empty list encodes to zero bytes.
func EncodeLines(entries []string) []byte {
	return []byte(strings.Join(entries, "\n"))
}

// DecodeLines splits flat-file content into entries.
// Blank lines (empty or whitespace only) are dropped, a trailing "\r" is
// stripped from each line, everything else is kept verbatim and in order.
func DecodeLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if IsBlank(line) {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DecodeJSON parses a JSON array of strings.
// A top-level null, non-string elements (including null) and trailing data
// are rejected. An empty array decodes to an empty, non-nil slice.
func DecodeJSON(data []byte) ([]string, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON: unexpected data after array")
	}
	if raw == nil {
		return nil, ErrNotStringArray
	}

	entries := make([]string, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '"' {
			return nil, fmt.Errorf("element %d: %w", i, ErrNotStringArray)
		}
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		entries = append(entries, s)
	}
	return entries, nil
}

// EncodeJSON renders entries as an indented JSON array. A nil list encodes
// as [] so the output is always importable.
func EncodeJSON(entries []string) ([]byte, error) {
	if entries == nil {
		entries = []string{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode prizes: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeYAML renders entries as a YAML sequence under a "prizes" key.
func EncodeYAML(entries []string) ([]byte, error) {
	if entries == nil {
		entries = []string{}
	}
	doc := struct {
		Prizes []string `yaml:"prizes"`
	}{Prizes: entries}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prizes: %w", err)
	}
	return data, nil
}
