/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"testing"

	"bennypowers.dev/tavnit/format/formatter"
)

func TestObject_InsertionOrder(t *testing.T) {
	o := formatter.NewObject()
	o.Set("zebra", 1.0)
	o.Set("apple", 2.0)
	o.Set("mango", 3.0)

	keys := o.Keys()
	want := []string{"zebra", "apple", "mango"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("key %d: expected %s, got %s", i, key, keys[i])
		}
	}
}

func TestObject_ReplaceKeepsPosition(t *testing.T) {
	o := formatter.NewObject()
	o.Set("first", "a")
	o.Set("second", "b")
	o.Set("first", "c")

	if o.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", o.Len())
	}
	if o.Keys()[0] != "first" {
		t.Errorf("replaced key lost its position")
	}
	if v, _ := o.Get("first"); v != "c" {
		t.Errorf("expected replaced value c, got %v", v)
	}
}

func TestObject_MarshalJSON(t *testing.T) {
	o := formatter.NewObject()
	o.Set("zebra", "z")
	o.Set("apple", "a")

	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"zebra":"z","apple":"a"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, string(data))
	}
}

func TestObject_MarshalJSON_Nested(t *testing.T) {
	o := formatter.NewObject()
	child, err := o.Child("colors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child.Set("primary", "#00f")

	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"colors":{"primary":"#00f"}}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, string(data))
	}
}

func TestObject_ChildConflict(t *testing.T) {
	o := formatter.NewObject()
	o.Set("colors", "not an object")

	if _, err := o.Child("colors"); err == nil {
		t.Errorf("expected error for child over scalar value")
	}
}
