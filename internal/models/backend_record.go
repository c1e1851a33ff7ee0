package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// BackendRecord is a lesson payload as the lessons API sends it.
//
// Values are whatever encoding/json produces for an untyped document: nil, bool, float64
// (or json.Number), string, []any and map[string]any. Fields are read one by one through
// the accessors below and are never trusted as a typed shape.
type BackendRecord map[string]any

// Has reports whether key is present, even with a null value
func (r BackendRecord) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Int returns an integral number stored under key
func (r BackendRecord) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// String returns a string stored under key
func (r BackendRecord) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// Bool returns a boolean stored under key
func (r BackendRecord) Bool(key string) (bool, bool) {
	v, ok := r[key].(bool)
	return v, ok
}

// OptionalString returns the string under key, or nil when it is absent, null or not a string
func (r BackendRecord) OptionalString(key string) *string {
	if v, ok := r.String(key); ok {
		return &v
	}
	return nil
}

// FirstBool returns the first boolean found under keys, in order
func (r BackendRecord) FirstBool(keys ...string) (bool, bool) {
	for _, key := range keys {
		if v, ok := r.Bool(key); ok {
			return v, true
		}
	}
	return false, false
}

// FirstString returns the first string found under keys, in order
func (r BackendRecord) FirstString(keys ...string) *string {
	for _, key := range keys {
		if v := r.OptionalString(key); v != nil {
			return v
		}
	}
	return nil
}
