package workspace

import (
	"os"
	"path/filepath"

	"github.com/flowstate-mods/matforge/internal/config"
)

// Layout describes where a workspace keeps its inputs and outputs. All
// paths are relative to Root unless overridden with absolute values.
type Layout struct {
	Root         string // workspace root, usually the current directory
	AssetsDir    string // generated asset tree
	TemplateFile string // uber template copied per material
	ManifestFile string // shared pak manifest
}

// Resolve builds the Layout for root from the loaded configuration.
func Resolve(root string) Layout {
	return Layout{
		Root:         root,
		AssetsDir:    config.Get(config.KeyAssetsDir),
		TemplateFile: config.Get(config.KeyTemplateFile),
		ManifestFile: config.Get(config.KeyManifestFile),
	}
}

// TemplatePath returns the full path to the uber template.
func (l Layout) TemplatePath() string {
	return filepath.Join(l.Root, l.TemplateFile)
}

// ManifestPath returns the full path to the pak manifest.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Root, l.ManifestFile)
}

// AssetsPath returns the full path to the assets root.
func (l Layout) AssetsPath() string {
	return filepath.Join(l.Root, l.AssetsDir)
}

// TemplateExists reports whether the uber template is present.
func (l Layout) TemplateExists() bool {
	_, err := os.Stat(l.TemplatePath())
	return err == nil
}

// ManifestExists reports whether the pak manifest is present.
func (l Layout) ManifestExists() bool {
	_, err := os.Stat(l.ManifestPath())
	return err == nil
}
