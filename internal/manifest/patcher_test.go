package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `{
  "name": "common_flowstate",
  "assetsDir": "./assets",
  "outputDir": "./build",
  "files": [
    {
      "_type": "txtr",
      "_path": "texture/old_0.rpak"
    },
    {
      "_type": "matl",
      "_path": "material/existing_sknp.rpak"
    },
    {
      "_type": "matl",
      "_path": "material/other_sknp.rpak"
    }
  ]
}
`

func TestPatchInsertsBeforeFirstMaterialEntry(t *testing.T) {
	paths := []string{"material/foo/bar_sknp.rpak", "material/baz_sknp.rpak"}

	patched, result, err := Patch(sampleManifest, paths)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	if len(result.Added) != 2 || len(result.Skipped) != 0 {
		t.Fatalf("added %v skipped %v, want 2 added 0 skipped", result.Added, result.Skipped)
	}

	// Everything outside the insertion is byte-for-byte preserved.
	markerIdx := strings.Index(sampleManifest, `"_type": "matl"`)
	entryStart := strings.LastIndex(sampleManifest[:markerIdx], "{")
	insert := entryText(paths[0]) + entryText(paths[1])
	want := sampleManifest[:entryStart] + insert + sampleManifest[entryStart:]
	if patched != want {
		t.Errorf("patched text mismatch:\n--- got ---\n%s\n--- want ---\n%s", patched, want)
	}

	// New entries appear in order, before the pre-existing one.
	fooIdx := strings.Index(patched, `"material/foo/bar_sknp.rpak"`)
	bazIdx := strings.Index(patched, `"material/baz_sknp.rpak"`)
	existingIdx := strings.Index(patched, `"material/existing_sknp.rpak"`)
	if !(fooIdx < bazIdx && bazIdx < existingIdx) {
		t.Errorf("insertion order wrong: foo=%d baz=%d existing=%d", fooIdx, bazIdx, existingIdx)
	}

	// The patched manifest is still parseable JSON with the new entries.
	entries, err := Entries([]byte(patched))
	if err != nil {
		t.Fatalf("patched manifest no longer parses: %v", err)
	}
	matl := FilterByType(entries, TypeMaterial)
	if len(matl) != 4 {
		t.Errorf("got %d matl entries, want 4", len(matl))
	}
}

func TestPatchSkipsExistingPaths(t *testing.T) {
	paths := []string{"material/existing_sknp.rpak", "material/new_sknp.rpak"}

	patched, result, err := Patch(sampleManifest, paths)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if len(result.Added) != 1 || result.Added[0] != "material/new_sknp.rpak" {
		t.Errorf("Added = %v, want only the new path", result.Added)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "material/existing_sknp.rpak" {
		t.Errorf("Skipped = %v, want only the existing path", result.Skipped)
	}
	if strings.Count(patched, `"material/existing_sknp.rpak"`) != 1 {
		t.Error("existing path should not be duplicated")
	}
}

func TestPatchAllPathsExisting(t *testing.T) {
	paths := []string{"material/existing_sknp.rpak"}

	patched, result, err := Patch(sampleManifest, paths)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if len(result.Added) != 0 {
		t.Errorf("Added = %v, want none", result.Added)
	}
	if patched != sampleManifest {
		t.Error("content should be unchanged when nothing is added")
	}
}

func TestPatchNoMaterialMarker(t *testing.T) {
	content := `{"files": [{"_type": "txtr", "_path": "texture/a_0.rpak"}]}`

	patched, _, err := Patch(content, []string{"material/new_sknp.rpak"})
	if !errors.Is(err, ErrNoMaterialEntry) {
		t.Fatalf("err = %v, want ErrNoMaterialEntry", err)
	}
	if patched != content {
		t.Error("content should be unchanged when the marker is missing")
	}
}

func TestPatchNoEntryStart(t *testing.T) {
	// Marker present but no opening brace anywhere before it.
	content := `"_type": "matl", "_path": "material/existing_sknp.rpak"`

	_, _, err := Patch(content, []string{"material/new_sknp.rpak"})
	if !errors.Is(err, ErrNoEntryStart) {
		t.Fatalf("err = %v, want ErrNoEntryStart", err)
	}
}

func TestPatchFile(t *testing.T) {
	t.Run("writes the patched manifest", func(t *testing.T) {
		path := writeManifest(t, sampleManifest)

		result, err := PatchFile(path, []string{"material/new_sknp.rpak"})
		if err != nil {
			t.Fatalf("PatchFile() error: %v", err)
		}
		if len(result.Added) != 1 {
			t.Fatalf("Added = %v, want one path", result.Added)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading manifest: %v", err)
		}
		if !strings.Contains(string(data), `"material/new_sknp.rpak"`) {
			t.Error("manifest file missing the new entry")
		}
		if !json.Valid(data) {
			t.Error("patched manifest is not valid JSON")
		}
	})

	t.Run("leaves the file untouched when nothing is new", func(t *testing.T) {
		path := writeManifest(t, sampleManifest)

		before := stat(t, path)
		result, err := PatchFile(path, []string{"material/existing_sknp.rpak"})
		if err != nil {
			t.Fatalf("PatchFile() error: %v", err)
		}
		if len(result.Added) != 0 {
			t.Errorf("Added = %v, want none", result.Added)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading manifest: %v", err)
		}
		if string(data) != sampleManifest {
			t.Error("manifest bytes changed on a no-op patch")
		}
		if after := stat(t, path); !after.ModTime().Equal(before.ModTime()) {
			t.Error("manifest mtime changed on a no-op patch")
		}
	})

	t.Run("missing manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "common_flowstate.json")
		_, err := PatchFile(path, []string{"material/new_sknp.rpak"})
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("err = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("marker missing leaves bytes identical", func(t *testing.T) {
		content := `{"files": [{"_type": "txtr", "_path": "texture/a_0.rpak"}]}`
		path := writeManifest(t, content)

		_, err := PatchFile(path, []string{"material/new_sknp.rpak"})
		if !errors.Is(err, ErrNoMaterialEntry) {
			t.Fatalf("err = %v, want ErrNoMaterialEntry", err)
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Fatalf("reading manifest: %v", readErr)
		}
		if string(data) != content {
			t.Error("manifest bytes changed despite missing marker")
		}
	})
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "common_flowstate.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func stat(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info
}
