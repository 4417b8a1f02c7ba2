package optional

import (
	"encoding/json"
	"errors"
	"testing"
)

func rawObject(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		t.Fatalf("unmarshal %q: %v", s, err)
	}
	return obj
}

func TestDecode_MissingKeyIsAbsent(t *testing.T) {
	f, err := Decode[string](rawObject(t, `{}`), "name", true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !f.IsAbsent() {
		t.Errorf("decoding a missing key should yield Absent, got %+v", f)
	}
}

func TestDecode_NullKey(t *testing.T) {
	f, err := Decode[string](rawObject(t, `{"name": null}`), "name", true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !f.IsNull() {
		t.Errorf("decoding a nullable null key should yield Null, got %+v", f)
	}
}

func TestDecode_NullForbidden(t *testing.T) {
	_, err := Decode[string](rawObject(t, `{"name": null}`), "name", false)
	var mfe *MalformedFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MalformedFieldError, got %v", err)
	}
	if mfe.Key != "name" {
		t.Errorf("error key = %q, want %q", mfe.Key, "name")
	}
}

func TestDecode_Value(t *testing.T) {
	f, err := Decode[string](rawObject(t, `{"name": "sodium"}`), "name", false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v, ok := f.Get()
	if !ok || v != "sodium" {
		t.Errorf("Get() = (%q, %v), want (%q, true)", v, ok, "sodium")
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	_, err := Decode[int](rawObject(t, `{"count": "nope"}`), "count", false)
	var mfe *MalformedFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MalformedFieldError, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	out := map[string]any{}
	Encode(out, "absent", Absent[string]())
	Encode(out, "cleared", Null[string]())
	Encode(out, "named", Of("sodium"))

	if _, ok := out["absent"]; ok {
		t.Error("encoding Absent must not emit the key")
	}
	v, ok := out["cleared"]
	if !ok || v != nil {
		t.Errorf("encoding Null must emit the key as nil, got (%v, %v)", v, ok)
	}
	if out["named"] != "sodium" {
		t.Errorf("encoding a value must emit it, got %v", out["named"])
	}
}

func TestEncode_RoundTripThroughJSON(t *testing.T) {
	out := map[string]any{}
	Encode(out, "name", Null[string]())
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"name":null}` {
		t.Errorf("marshal = %s, want {\"name\":null}", data)
	}
}

func TestGetOr(t *testing.T) {
	if got := Absent[int]().GetOr(7); got != 7 {
		t.Errorf("Absent.GetOr(7) = %d, want 7", got)
	}
	if got := Null[int]().GetOr(7); got != 7 {
		t.Errorf("Null.GetOr(7) = %d, want 7", got)
	}
	if got := Of(3).GetOr(7); got != 3 {
		t.Errorf("Of(3).GetOr(7) = %d, want 3", got)
	}
}

func TestRequired(t *testing.T) {
	v, err := Required[int](rawObject(t, `{"downloads": 42}`), "downloads")
	if err != nil || v != 42 {
		t.Errorf("Required = (%d, %v), want (42, nil)", v, err)
	}

	if _, err := Required[int](rawObject(t, `{}`), "downloads"); err == nil {
		t.Error("Required on a missing key should fail")
	}
	if _, err := Required[int](rawObject(t, `{"downloads": null}`), "downloads"); err == nil {
		t.Error("Required on a null key should fail")
	}
}
