package jsontree

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Decode parses data into a generic document tree. Numbers are kept as
// json.Number so they render exactly as they appeared on the wire.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Lookup descends doc through a sequence of object keys. The second return
// is false when any step of the path is missing, null, or not an object.
func Lookup(doc any, path ...string) (any, bool) {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// String returns the scalar at path rendered as a string. Objects, arrays,
// and nulls report absent.
func String(doc any, path ...string) (string, bool) {
	v, ok := Lookup(doc, path...)
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// List returns the array at path.
func List(doc any, path ...string) ([]any, bool) {
	v, ok := Lookup(doc, path...)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}
