package orgdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Document is a parsed configuration document with default-on-absence access.
// No schema is enforced: every accessor takes or implies a fallback, so
// downstream rendering proceeds with placeholder values when data is missing.
//
// The zero value (and Empty()) behaves as an empty object: all lookups miss
// and it marshals as {}.
type Document struct {
	raw json.RawMessage
}

// Entry is one key/value pair of a JSON object, in source order.
type Entry struct {
	Key string
	Doc Document
}

// Empty returns a document with no content.
func Empty() Document {
	return Document{}
}

// Parse parses raw JSON into a Document.
// The top level must be a JSON object; anything else is ErrMalformed.
func Parse(data []byte) (Document, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Document{raw: json.RawMessage(data)}, nil
}

// IsEmpty reports whether the document holds no content at all.
func (d Document) IsEmpty() bool {
	return len(d.raw) == 0
}

// MarshalJSON embeds the document's raw content, or {} when empty.
// This lets Document values appear directly in serialized snapshots.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return []byte("{}"), nil
	}
	return d.raw, nil
}

// object decodes the document as a JSON object.
// Returns nil for empty documents and non-object values.
func (d Document) object() map[string]json.RawMessage {
	if len(d.raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(d.raw, &m); err != nil {
		return nil
	}
	return m
}

// Section descends through nested objects along keys.
// Any missing key or non-object value yields Empty().
func (d Document) Section(keys ...string) Document {
	cur := d
	for _, key := range keys {
		raw, ok := cur.object()[key]
		if !ok {
			return Empty()
		}
		next := Document{raw: raw}
		if next.object() == nil {
			return Empty()
		}
		cur = next
	}
	return cur
}

// Scalar returns the scalar value under key rendered as a string,
// or fallback when the key is absent or the value is not scalar.
// Whole numbers render without a fractional part.
func (d Document) Scalar(key, fallback string) string {
	raw, ok := d.object()[key]
	if !ok {
		return fallback
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}

	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fallback
	}
}

// Strings returns the list under key with each scalar element rendered as a
// string. Absent keys, non-list values, and non-scalar elements yield nothing.
func (d Document) Strings(key string) []string {
	raw, ok := d.object()[key]
	if !ok {
		return nil
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var out []string
	for _, item := range items {
		switch x := item.(type) {
		case string:
			out = append(out, x)
		case float64:
			if x == math.Trunc(x) && math.Abs(x) < 1e15 {
				out = append(out, strconv.FormatInt(int64(x), 10))
			} else {
				out = append(out, strconv.FormatFloat(x, 'f', -1, 64))
			}
		case bool:
			out = append(out, strconv.FormatBool(x))
		}
	}
	return out
}

// Entries returns the document's object entries in source order.
// Context rendering depends on this order matching the file, which the usual
// map decoding cannot provide, so the object is walked token by token.
func (d Document) Entries() []Entry {
	if len(d.raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(d.raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil
		}
		entries = append(entries, Entry{Key: key, Doc: Document{raw: val}})
	}
	return entries
}
