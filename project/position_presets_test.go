package project

import (
	"path/filepath"
	"testing"

	"g2rapid/common/config"
	"g2rapid/common/file"
)

func TestDefaultPresetNames(t *testing.T) {
	catalog := DefaultPresetCatalog()
	names := catalog.TCPPresetNames()
	want := []string{"Custom", "Rotation about X axis", "Rotation about Y axis", "Rotation about Z axis"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name %d: got %q, want %q", i, names[i], want[i])
		}
	}
	if len(catalog.WorkobjPresetNames()) != len(want) {
		t.Fatalf("unexpected work object presets %v", catalog.WorkobjPresetNames())
	}
}

func TestLoadPresetCatalogCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position_presets.json")
	catalog := LoadPresetCatalog(path)
	if !file.Exists(path) {
		t.Fatalf("expected %s to be created", path)
	}
	p, ok := catalog.TCPPreset(2)
	if !ok || p.Euler() != (EulerOrientation{Y: 90}) {
		t.Fatalf("unexpected preset 2: %+v %v", p, ok)
	}

	reloaded := LoadPresetCatalog(path)
	p, ok = reloaded.WorkobjPreset(3)
	if !ok || p.Name != "Rotation about Z axis" || p.Z != 90 {
		t.Fatalf("unexpected reloaded preset 3: %+v %v", p, ok)
	}
}

func TestLoadPresetCatalogCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	err := config.WriteJSON(path, map[string]interface{}{
		"tcp_presets": map[string]interface{}{
			"1":   map[string]interface{}{"name": "Torch down", "x": 180.0, "y": 0.0, "z": 0.0},
			"bad": map[string]interface{}{"name": "ignored"},
		},
	})
	if err != nil {
		t.Fatalf("write presets: %v", err)
	}
	catalog := LoadPresetCatalog(path)
	p, ok := catalog.TCPPreset(1)
	if !ok || p.Name != "Torch down" || p.X != 180 {
		t.Fatalf("unexpected preset: %+v %v", p, ok)
	}
	if _, ok := catalog.TCPPreset(2); ok {
		t.Fatalf("preset 2 should not exist")
	}
	if names := catalog.WorkobjPresetNames(); len(names) != 1 || names[0] != CustomPresetName {
		t.Fatalf("expected only the custom entry, got %v", names)
	}
}

func TestPresetApplyTo(t *testing.T) {
	s := NewAppSettings()
	if err := s.SetTCPOrientation("10,20,30"); err != nil {
		t.Fatal(err)
	}
	s.SetOrientationPresets(0, 1)
	DefaultPresetCatalog().ApplyTo(s)

	if s.TCPObject().Orientation.Euler() != (EulerOrientation{X: 10, Y: 20, Z: 30}) {
		t.Fatalf("custom TCP orientation should be kept, got %+v", s.TCPObject().Orientation.Euler())
	}
	if s.WorkObject().Orientation.Euler() != (EulerOrientation{X: 90}) {
		t.Fatalf("work object preset not applied, got %+v", s.WorkObject().Orientation.Euler())
	}

	s.SetOrientationPresets(42, 0)
	DefaultPresetCatalog().ApplyTo(s)
	if s.TCPObject().Orientation.Euler() != (EulerOrientation{X: 10, Y: 20, Z: 30}) {
		t.Fatalf("unknown preset should leave orientation alone")
	}
}
