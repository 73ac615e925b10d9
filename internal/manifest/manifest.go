// Package manifest reads, rewrites and persists project manifests (package.json).
//
// The manifest is treated as an opaque JSON object with a single significant
// field, "version". Every other top-level value is kept as its original raw
// bytes and written back in its original key order, so a rewrite changes
// nothing but the version and the whitespace.
//
// PIPELINE:
//  1. Read the file (FileNotFound)
//  2. Parse it as a JSON object (ParseError)
//  3. Extract and parse "version" (MalformedVersionField)
//  4. Apply the increment (InvalidVersionKind, checked before any I/O)
//  5. Re-encode with two-space indentation and overwrite the file (WriteError)
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// VersionKey is the only field bumpver interprets.
const VersionKey = "version"

// Indent is the per-level indentation used when writing the manifest.
const Indent = "  "

// jsonAPI leaves <, > and & unescaped so rewritten strings match what npm writes.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	errNotObject     = errors.New("top-level value must be a JSON object")
	errTrailingData  = errors.New("unexpected data after top-level object")
	errMissingField  = errors.New("field is missing")
	errNotStringType = errors.New("field is not a string")
)

type field struct {
	key   string
	value []byte
}

// Manifest is an ordered set of top-level JSON fields.
type Manifest struct {
	fields []field
}

// Parse decodes data into a Manifest. The input must be a single JSON object.
// Duplicate keys collapse into the first position with the last value, the
// same way JavaScript objects behave.
func Parse(data []byte) (*Manifest, error) {
	if !json.Valid(data) {
		return nil, invalidJSONError(data)
	}

	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errNotObject
	}

	m := &Manifest{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		raw := it.SkipAndReturnBytes()
		if it.Error != nil {
			return false
		}
		m.set(key, bytes.TrimSpace(raw))
		return true
	})
	if iter.Error != nil {
		return nil, iter.Error
	}

	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, errTrailingData
	}

	return m, nil
}

// invalidJSONError recovers a positioned syntax error for messages.
func invalidJSONError(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}

// Keys returns the top-level keys in file order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		keys = append(keys, f.key)
	}
	return keys
}

// Raw returns the raw JSON value stored under key.
func (m *Manifest) Raw(key string) ([]byte, bool) {
	for _, f := range m.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Version returns the "version" string without validating its format.
func (m *Manifest) Version() (string, error) {
	raw, ok := m.Raw(VersionKey)
	if !ok {
		return "", errMissingField
	}

	if jsonAPI.Get(raw).ValueType() != jsoniter.StringValue {
		return "", errNotStringType
	}

	var version string
	if err := jsonAPI.Unmarshal(raw, &version); err != nil {
		return "", err
	}
	return version, nil
}

// SetVersion replaces the "version" value, appending the field if absent.
func (m *Manifest) SetVersion(version string) error {
	raw, err := jsonAPI.Marshal(version)
	if err != nil {
		return err
	}
	m.set(VersionKey, raw)
	return nil
}

func (m *Manifest) set(key string, value []byte) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].value = value
			return
		}
	}
	m.fields = append(m.fields, field{key: key, value: value})
}

// MarshalJSON encodes the manifest compactly, preserving key order and raw values.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := jsonAPI.Marshal(f.key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the manifest as written to disk: two-space indentation and a
// trailing newline.
func (m *Manifest) Encode() ([]byte, error) {
	compact, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", Indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
