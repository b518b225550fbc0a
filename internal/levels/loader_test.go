package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLevel = `id: custom
name: Custom Board
rows:
  - "####"
  - "H..H"
`

func TestParseYAML(t *testing.T) {
	layout, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if layout.ID != "custom" || layout.Name != "Custom Board" {
		t.Errorf("identity = %q/%q", layout.ID, layout.Name)
	}
	if layout.Width != 4 || layout.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 4x2", layout.Width, layout.Height)
	}
	if layout.CountBricks() != 6 {
		t.Errorf("CountBricks = %d, want 6", layout.CountBricks())
	}
	if layout.Cells[1][0].HP != 2 {
		t.Errorf("hard brick HP = %d, want 2", layout.Cells[1][0].HP)
	}
}

func TestParseYAMLNameDefaultsToID(t *testing.T) {
	layout, err := ParseYAML([]byte("id: x\nrows: [\"#\"]\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if layout.Name != "x" {
		t.Errorf("Name = %q, want id fallback", layout.Name)
	}
}

func TestParseYAMLRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", ":::"},
		{"missing id", "rows: [\"#\"]"},
		{"no rows", "id: x"},
		{"no bricks", "id: x\nrows: [\"...\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, id string) {
		data := "id: " + id + "\nrows: [\"###\"]\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("02-second.yaml", "second")
	write("01-first.yaml", "first")
	// Non-level files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	layouts, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(layouts) != 2 {
		t.Fatalf("loaded %d layouts, want 2", len(layouts))
	}
	if layouts[0].ID != "first" || layouts[1].ID != "second" {
		t.Errorf("filename order not respected: %q, %q", layouts[0].ID, layouts[1].ID)
	}
}

func TestLoadDirRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("id: dup\nrows: [\"#\"]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("duplicate level ids should be rejected")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("empty dir should be an error")
	}
}
