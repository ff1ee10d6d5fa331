package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// materialMarker locates the first pre-existing material entry. The patcher
// assumes the manifest groups entries by type, so inserting before this
// marker keeps the material block contiguous.
const materialMarker = `"_type": "matl"`

// ErrNoMaterialEntry means the manifest contains no material entry to anchor
// the insertion point.
var ErrNoMaterialEntry = errors.New("manifest contains no material entries")

// ErrNoEntryStart means the opening brace of the first material entry could
// not be located.
var ErrNoEntryStart = errors.New("could not find the start of the first material entry")

// PatchResult reports which paths a patch run added and which it skipped.
type PatchResult struct {
	Added   []string
	Skipped []string
}

// Patch inserts entry blocks for the given rpak paths into the manifest
// text, immediately before the first existing material entry. Paths already
// present (quote-wrapped, verbatim) are skipped. Every byte outside the
// inserted text is preserved. Precondition: the manifest must already
// contain at least one material entry.
func Patch(content string, paths []string) (string, *PatchResult, error) {
	result := &PatchResult{}

	for _, p := range paths {
		if strings.Contains(content, `"`+p+`"`) {
			result.Skipped = append(result.Skipped, p)
		} else {
			result.Added = append(result.Added, p)
		}
	}

	if len(result.Added) == 0 {
		return content, result, nil
	}

	markerIdx := strings.Index(content, materialMarker)
	if markerIdx == -1 {
		return content, nil, ErrNoMaterialEntry
	}

	entryStart := strings.LastIndex(content[:markerIdx], "{")
	if entryStart == -1 {
		return content, nil, ErrNoEntryStart
	}

	var sb strings.Builder
	for _, p := range result.Added {
		sb.WriteString(entryText(p))
	}

	return content[:entryStart] + sb.String() + content[entryStart:], result, nil
}

// PatchFile applies Patch to the manifest file in place. The whole file is
// read once and overwritten once; nothing is written when no new paths
// remain or when the insertion point cannot be found.
func PatchFile(path string, paths []string) (*PatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	patched, result, err := Patch(string(data), paths)
	if err != nil {
		return nil, err
	}

	if len(result.Added) == 0 {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return nil, fmt.Errorf("writing manifest %s: %w", path, err)
	}

	return result, nil
}

// entryText renders one manifest entry block for an rpak path, matching the
// indentation of repak map files.
func entryText(path string) string {
	return "    {\n" +
		"      \"_type\": \"matl\",\n" +
		"      \"_path\": \"" + path + "\"\n" +
		"    },\n"
}
