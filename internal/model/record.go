package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("expected a JSON object")

// rawMember is a single object member with its encoded value.
type rawMember struct {
	key   string
	value json.RawMessage
}

// rawObject holds the members of a decoded JSON object in input order so a
// record can be written back with its unknown keys and number spellings intact.
type rawObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o rawObject) decoded() bool {
	return o.values != nil
}

func decodeRawObject(data []byte) (rawObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return rawObject{}, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return rawObject{}, errNotObject
	}

	obj := rawObject{values: map[string]json.RawMessage{}}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rawObject{}, err
		}

		key, ok := tok.(string)
		if !ok {
			return rawObject{}, fmt.Errorf("unexpected object key %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return rawObject{}, err
		}

		// Duplicate keys keep their first position and the last value.
		if _, seen := obj.values[key]; !seen {
			obj.keys = append(obj.keys, key)
		}

		obj.values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return rawObject{}, err
	}

	return obj, nil
}

// encode writes the object back in input order. Members in replace override
// the stored value; those the input did not have are appended.
func (o rawObject) encode(replace ...rawMember) ([]byte, error) {
	var buf bytes.Buffer

	used := make([]bool, len(replace))
	first := true

	emit := func(key string, value json.RawMessage) error {
		name, err := marshalVerbatim(key)
		if err != nil {
			return err
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)

		return nil
	}

	buf.WriteByte('{')

	for _, key := range o.keys {
		value := o.values[key]

		for i, r := range replace {
			if r.key == key {
				value = r.value
				used[i] = true
			}
		}

		if err := emit(key, value); err != nil {
			return nil, err
		}
	}

	for i, r := range replace {
		if used[i] {
			continue
		}

		if err := emit(r.key, r.value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// numberToInt truncates a JSON number the way a float-to-int cast would.
// A missing number is 0.
func numberToInt(n *json.Number) (int, error) {
	if n == nil {
		return 0, nil
	}

	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", n.String(), err)
	}

	return int(f), nil
}

func numberToFloat(n *json.Number) (float64, error) {
	if n == nil {
		return 0, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", n.String(), err)
	}

	return f, nil
}

// marshalVerbatim encodes v without escaping <, > and &, matching the JSONL
// writer so code bodies stay readable.
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
