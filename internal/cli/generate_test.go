package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `{
  "name": "common_flowstate",
  "files": [
    {
      "_type": "matl",
      "_path": "material/existing_sknp.rpak"
    }
  ]
}
`

func setupWorkspace(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
	if err := os.WriteFile("testuber.uber", []byte("UBER\x00template"), 0644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	if err := os.WriteFile("common_flowstate.json", []byte(testManifest), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}

func runGenerate(t *testing.T, input string, args ...string) {
	t.Helper()
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(append([]string{"generate"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestGenerateInteractive(t *testing.T) {
	setupWorkspace(t)

	runGenerate(t, "foo/bar\nbaz\n\ny\n")

	// Material files are laid out under assets/material/.
	for _, f := range []string{
		filepath.Join("assets", "material", "foo", "bar_sknp.json"),
		filepath.Join("assets", "material", "foo", "bar_sknp.uber"),
		filepath.Join("assets", "material", "baz_sknp.json"),
		filepath.Join("assets", "material", "baz_sknp.uber"),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected generated file %s: %v", f, err)
		}
	}

	// Manifest gained both entries, in input order, before the existing one.
	data, err := os.ReadFile("common_flowstate.json")
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	content := string(data)
	fooIdx := strings.Index(content, `"material/foo/bar_sknp.rpak"`)
	bazIdx := strings.Index(content, `"material/baz_sknp.rpak"`)
	existingIdx := strings.Index(content, `"material/existing_sknp.rpak"`)
	if fooIdx == -1 || bazIdx == -1 {
		t.Fatalf("manifest missing new entries:\n%s", content)
	}
	if !(fooIdx < bazIdx && bazIdx < existingIdx) {
		t.Errorf("entry order wrong: foo=%d baz=%d existing=%d", fooIdx, bazIdx, existingIdx)
	}
}

func TestGenerateCancelled(t *testing.T) {
	setupWorkspace(t)

	runGenerate(t, "foo\n\nn\n")

	if _, err := os.Stat("assets"); !os.IsNotExist(err) {
		t.Error("cancelling should produce no files")
	}
	assertManifestUnchanged(t)
}

func TestGenerateNoNames(t *testing.T) {
	setupWorkspace(t)

	runGenerate(t, "\n")

	if _, err := os.Stat("assets"); !os.IsNotExist(err) {
		t.Error("empty input should produce no files")
	}
	assertManifestUnchanged(t)
}

func TestGenerateMissingTemplate(t *testing.T) {
	setupWorkspace(t)
	if err := os.Remove("testuber.uber"); err != nil {
		t.Fatalf("removing template: %v", err)
	}

	runGenerate(t, "", "foo")

	if _, err := os.Stat("assets"); !os.IsNotExist(err) {
		t.Error("missing template should abort before generating files")
	}
	assertManifestUnchanged(t)
}

func TestGenerateArgsSkipPrompt(t *testing.T) {
	setupWorkspace(t)

	// Names on the command line bypass collection and confirmation.
	runGenerate(t, "", "props/crate_low")

	if _, err := os.Stat(filepath.Join("assets", "material", "props", "crate_low_sknp.json")); err != nil {
		t.Errorf("expected generated descriptor: %v", err)
	}

	data, err := os.ReadFile("common_flowstate.json")
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if !strings.Contains(string(data), `"material/props/crate_low_sknp.rpak"`) {
		t.Error("manifest missing the registered entry")
	}
}

func assertManifestUnchanged(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile("common_flowstate.json")
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if string(data) != testManifest {
		t.Errorf("manifest bytes changed:\n%s", data)
	}
}
