package icondemo

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultAssetsRoot is the asset catalog looked up under the project root.
	DefaultAssetsRoot = "Assets.xcassets"

	sourceIconSet = "AppIcon.appiconset"
	demoIconSet   = "DemoAppIcon.appiconset"
)

// Layout holds the resolved icon set directories of a project.
type Layout struct {
	SourceDir string
	OutputDir string
}

// ResolveLayout locates the source and demo icon sets under projectRoot.
// An empty assetsRoot selects DefaultAssetsRoot.
func ResolveLayout(projectRoot, assetsRoot string) (Layout, error) {
	if projectRoot == "" {
		projectRoot = "."
	}
	if assetsRoot == "" {
		assetsRoot = DefaultAssetsRoot
	}

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve project root %q: %w", projectRoot, err)
	}

	base := assetsRoot
	if !filepath.IsAbs(base) {
		base = filepath.Join(root, base)
	}

	return Layout{
		SourceDir: filepath.Join(base, sourceIconSet),
		OutputDir: filepath.Join(base, demoIconSet),
	}, nil
}

// Generator returns a Generator for the layout.
func (l Layout) Generator(engine *Engine, observer Observer) *Generator {
	return &Generator{
		SourceDir: l.SourceDir,
		OutputDir: l.OutputDir,
		Engine:    engine,
		Observer:  observer,
	}
}
