package jsontree

import (
	"testing"
)

func mustDecode(t *testing.T, data string) any {
	t.Helper()
	doc, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return doc
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLookup(t *testing.T) {
	doc := mustDecode(t, `{"a":{"b":{"c":42}},"n":null,"s":"x"}`)

	tests := []struct {
		name   string
		path   []string
		wantOK bool
	}{
		{"nested present", []string{"a", "b", "c"}, true},
		{"top level present", []string{"s"}, true},
		{"missing key", []string{"a", "b", "missing"}, false},
		{"path through scalar", []string{"s", "deeper"}, false},
		{"null is absent", []string{"n"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Lookup(doc, tt.path...)
			if ok != tt.wantOK {
				t.Errorf("Lookup(%v) ok = %v, expected %v", tt.path, ok, tt.wantOK)
			}
		})
	}
}

func TestString(t *testing.T) {
	doc := mustDecode(t, `{"s":"hello","n":40597,"f":7.50,"big":123456789012345678,"b":true,"e":"","o":{},"l":[1],"z":null}`)

	tests := []struct {
		name   string
		path   []string
		want   string
		wantOK bool
	}{
		{"string", []string{"s"}, "hello", true},
		{"integer keeps wire form", []string{"n"}, "40597", true},
		{"float keeps wire form", []string{"f"}, "7.50", true},
		{"big integer is not rounded", []string{"big"}, "123456789012345678", true},
		{"bool", []string{"b"}, "true", true},
		{"empty string is present", []string{"e"}, "", true},
		{"object is absent", []string{"o"}, "", false},
		{"array is absent", []string{"l"}, "", false},
		{"null is absent", []string{"z"}, "", false},
		{"missing is absent", []string{"nope"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := String(doc, tt.path...)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("String(%v) = (%q, %v), expected (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestList(t *testing.T) {
	doc := mustDecode(t, `{"wrap":{"value":[1,2,3]},"empty":[],"notlist":"x"}`)

	if list, ok := List(doc, "wrap", "value"); !ok || len(list) != 3 {
		t.Errorf("List(wrap.value) = (%d items, %v), expected (3, true)", len(list), ok)
	}
	if list, ok := List(doc, "empty"); !ok || len(list) != 0 {
		t.Errorf("List(empty) = (%d items, %v), expected (0, true)", len(list), ok)
	}
	if _, ok := List(doc, "notlist"); ok {
		t.Error("List(notlist) should not be ok")
	}
	if _, ok := List(doc, "missing"); ok {
		t.Error("List(missing) should not be ok")
	}
}
