/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is an insertion-ordered string-keyed object. Formatters build
// structured output with it so keys are emitted in the resolver's stable
// order instead of being re-sorted alphabetically.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set inserts or replaces a key. A replaced key keeps its original position.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for a key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Child returns the nested Object at key, creating it if absent. Returns an
// error if the key already holds a non-object value.
func (o *Object) Child(key string) (*Object, error) {
	v, ok := o.values[key]
	if !ok {
		child := NewObject()
		o.Set(key, child)
		return child, nil
	}
	child, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("key %q already holds a value", key)
	}
	return child, nil
}

// MarshalJSON emits keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSONIndent emits keys in insertion order with two-space indent.
func (o *Object) MarshalJSONIndent() ([]byte, error) {
	compact, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
