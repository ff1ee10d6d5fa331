package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entries parses the manifest as JSON and returns every asset entry it
// declares, in file order. Repak map files keep their entries in a
// top-level "files" array; any array of {_type, _path} objects is accepted
// so older map layouts still parse.
func Entries(data []byte) ([]Entry, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	// Prefer the conventional "files" key.
	if raw, ok := doc["files"]; ok {
		return decodeEntries(raw)
	}

	// Fall back to the first array value that decodes as entries.
	for _, raw := range doc {
		entries, err := decodeEntries(raw)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
	}

	return nil, fmt.Errorf("manifest declares no asset entry array")
}

// EntriesFromFile reads and parses a manifest file.
func EntriesFromFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Entries(data)
}

// FilterByType returns the entries matching the given type discriminator.
func FilterByType(entries []Entry, typeName string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Type == typeName {
			out = append(out, e)
		}
	}
	return out
}

func decodeEntries(raw json.RawMessage) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	// Reject arrays whose elements lack the discriminator; they are some
	// other manifest section, not asset entries.
	for _, e := range entries {
		if e.Type == "" {
			return nil, fmt.Errorf("array element missing _type")
		}
	}
	return entries, nil
}
