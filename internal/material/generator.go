package material

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options locates the workspace inputs for a generation run.
type Options struct {
	AssetsDir    string // root of the generated asset tree, e.g. "assets"
	TemplateFile string // uber template copied alongside each descriptor
}

// Generated records the files produced for one material.
type Generated struct {
	Name     string // full material name as entered
	JSONFile string // on-disk path of the descriptor
	UberFile string // on-disk path of the copied uber buffer
	PakPath  string // logical rpak path for manifest registration
}

// Result holds the outcome of a generation run.
type Result struct {
	Materials []Generated
	Warnings  []string
}

// PakPaths returns the logical manifest paths in generation order.
func (r *Result) PakPaths() []string {
	paths := make([]string, len(r.Materials))
	for i, m := range r.Materials {
		paths[i] = m.PakPath
	}
	return paths
}

// Generate writes the descriptor and uber files for each material name, in
// input order, and reports progress on w. The uber template must exist
// before any material is processed; existing output files are overwritten.
func Generate(names []string, opts Options, w io.Writer) (*Result, error) {
	tmplInfo, err := os.Stat(opts.TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("uber template %s: %w", opts.TemplateFile, err)
	}
	tmplData, err := os.ReadFile(opts.TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("reading uber template %s: %w", opts.TemplateFile, err)
	}

	result := &Result{}

	for _, name := range names {
		fmt.Fprintf(w, "Processing material: %s\n", name)

		base := BaseName(name)
		dir := outputDir(opts.AssetsDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating material directory %s: %w", dir, err)
		}

		data, err := json.MarshalIndent(NewDescriptor(name), "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding descriptor for %s: %w", name, err)
		}

		jsonPath := filepath.Join(dir, base+"_"+ShaderType+".json")
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", jsonPath, err)
		}

		uberPath := filepath.Join(dir, base+"_"+ShaderType+".uber")
		if err := copyTemplate(tmplData, tmplInfo, uberPath); err != nil {
			return nil, fmt.Errorf("copying uber template to %s: %w", uberPath, err)
		}

		fmt.Fprintf(w, "  Created: %s\n", jsonPath)
		fmt.Fprintf(w, "  Created: %s\n", uberPath)

		// Sanity-check the descriptor we just wrote against the schema.
		if valResult, valErr := Validate(data); valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not validate descriptor for %s: %v", name, valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("descriptor for %s: %s", name, msg))
			}
		}

		result.Materials = append(result.Materials, Generated{
			Name:     name,
			JSONFile: jsonPath,
			UberFile: uberPath,
			PakPath:  PakPath(name),
		})
	}

	return result, nil
}

// outputDir maps a slash-delimited material name to its on-disk directory.
// Only the parent segments form subdirectories; the base name becomes the
// file stem.
func outputDir(assetsDir, name string) string {
	dir := filepath.Join(assetsDir, "material")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dir = filepath.Join(dir, filepath.FromSlash(name[:idx]))
	}
	return dir
}

// copyTemplate writes the template bytes to dst, carrying over the
// template's permission bits and modification time.
func copyTemplate(data []byte, srcInfo os.FileInfo, dst string) error {
	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}
