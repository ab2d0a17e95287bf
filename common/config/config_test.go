package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteThenReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := map[string]interface{}{
		"conversion": map[string]interface{}{"arm_speed": 50, "zone": 10},
		"parameters": map[string]interface{}{"tool_name": "Tool"},
	}
	if err := WriteJSON(path, doc); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	conv := Section(got, "conversion")
	if speed, ok := Int(conv, "arm_speed"); !ok || speed != 50 {
		t.Fatalf("unexpected arm_speed %v %v", speed, ok)
	}
	if name, ok := String(Section(got, "parameters"), "tool_name"); !ok || name != "Tool" {
		t.Fatalf("unexpected tool_name %q", name)
	}
	if Section(got, "missing") != nil {
		t.Fatalf("missing section should be nil")
	}
}

func TestReadJSONErrors(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(t.TempDir(), "none.json")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadJSON(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFloatAcceptsNumericKinds(t *testing.T) {
	section := map[string]interface{}{"a": 1.5, "b": 2, "c": int64(3), "d": "4"}
	if v, ok := Float(section, "a"); !ok || v != 1.5 {
		t.Fatalf("float64 not read: %v", v)
	}
	if v, ok := Float(section, "b"); !ok || v != 2 {
		t.Fatalf("int not read: %v", v)
	}
	if v, ok := Float(section, "c"); !ok || v != 3 {
		t.Fatalf("int64 not read: %v", v)
	}
	if _, ok := Float(section, "d"); ok {
		t.Fatalf("string must not be read as number")
	}
}
