package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// materialMarker mirrors the patcher's anchor; doctor checks it is present
// so a later generate run will not abort at the patch phase.
const materialMarker = `"_type": "matl"`

// Check runs the workspace health checks and prints a report on w. It
// returns the number of failed checks.
func Check(w io.Writer, lay Layout, buildVersion, requires string) int {
	failures := 0

	fmt.Fprintln(w, "Workspace check:")

	// Uber template.
	if lay.TemplateExists() {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", lay.TemplatePath())
	} else {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", lay.TemplatePath())
		failures++
	}

	// Manifest presence and anchor.
	manifestPath := lay.ManifestPath()
	data, err := os.ReadFile(manifestPath)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", manifestPath)
		failures++
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", manifestPath, err)
		failures++
	case !strings.Contains(string(data), materialMarker):
		fmt.Fprintf(w, "  [WARN] %s has no material entries; patching will be skipped\n", manifestPath)
		failures++
	default:
		fmt.Fprintf(w, "  [ OK ] %s exists and contains material entries\n", manifestPath)
	}

	// Assets root writability.
	if err := checkWritable(lay.AssetsPath()); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s is not writable: %v\n", lay.AssetsPath(), err)
		failures++
	} else {
		fmt.Fprintf(w, "  [ OK ] %s is writable\n", lay.AssetsPath())
	}

	// Tool version requirement.
	if requires != "" {
		ok, err := MeetsRequirement(buildVersion, requires)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [WARN] cannot evaluate version requirement %q: %v\n", requires, err)
		case !ok:
			fmt.Fprintf(w, "  [FAIL] tool version %s does not satisfy %q\n", buildVersion, requires)
			failures++
		default:
			fmt.Fprintf(w, "  [ OK ] tool version %s satisfies %q\n", buildVersion, requires)
		}
	}

	return failures
}

// MeetsRequirement reports whether the current tool version satisfies a
// semver constraint such as ">= 0.3.0". A leading "v" on the version is
// tolerated.
func MeetsRequirement(current, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", current, err)
	}
	return c.Check(v), nil
}

// checkWritable probes a directory by creating and removing a temp file.
// A missing directory passes: generate creates it on demand.
func checkWritable(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		parent := filepath.Dir(dir)
		if _, err := os.Stat(parent); err != nil {
			return err
		}
		dir = parent
	}

	f, err := os.CreateTemp(dir, ".matforge-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
