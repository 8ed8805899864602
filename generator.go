package icondemo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sourceMarker = "Default"
	demoMarker   = "Demo"
	iconExt      = ".png"
)

var (
	// ErrWrite reports a demo icon that could not be written to disk.
	ErrWrite = errors.New("could not write")
	// ErrIncomplete is returned by callers that treat any per-file failure
	// as a failed run.
	ErrIncomplete = errors.New("some demo icons could not be generated")
)

// IsEligible reports whether name is a source icon: a .png file whose name
// contains the Default marker.
func IsEligible(name string) bool {
	return filepath.Ext(name) == iconExt && strings.Contains(name, sourceMarker)
}

// DemoName derives the output file name by replacing the first Default
// marker with Demo.
func DemoName(name string) string {
	return strings.Replace(name, sourceMarker, demoMarker, 1)
}

// FileError records a source icon that was skipped.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDecode):
		return "Could not load " + e.Name
	case errors.Is(e.Err, ErrContext):
		return "Could not create drawing context for " + e.Name
	case errors.Is(e.Err, ErrEncode):
		return "Could not encode " + e.Name
	case errors.Is(e.Err, ErrWrite):
		return "Could not write " + e.Name
	default:
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
}

func (e *FileError) Unwrap() error { return e.Err }

// Summary is the outcome of a generator run.
type Summary struct {
	Created []string
	Failed  []*FileError
}

// Observer receives progress notifications from a run.
type Observer interface {
	Started(sourceDir, outputDir string)
	Created(name string)
	Failed(err *FileError)
	Finished(summary Summary)
}

// Generator produces demo icons for every eligible file in SourceDir.
type Generator struct {
	SourceDir string
	OutputDir string

	// Engine defaults to a fresh NewEngine when nil.
	Engine *Engine
	// Observer may be nil.
	Observer Observer
}

// Run creates the output directory, then renders every eligible source icon
// in name order. Directory failures abort the run; per-file failures are
// recorded in the summary and processing continues.
func (g *Generator) Run() (Summary, error) {
	var summary Summary

	engine := g.Engine
	if engine == nil {
		engine = NewEngine()
	}

	if g.Observer != nil {
		g.Observer.Started(g.SourceDir, g.OutputDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	entries, err := os.ReadDir(g.SourceDir)
	if err != nil {
		return summary, fmt.Errorf("list source dir: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsEligible(name) {
			continue
		}

		outName := DemoName(name)
		if err := g.processFile(engine, name, outName); err != nil {
			fe := &FileError{Name: name, Err: err}
			summary.Failed = append(summary.Failed, fe)
			if g.Observer != nil {
				g.Observer.Failed(fe)
			}
			continue
		}

		summary.Created = append(summary.Created, outName)
		if g.Observer != nil {
			g.Observer.Created(outName)
		}
	}

	if g.Observer != nil {
		g.Observer.Finished(summary)
	}
	return summary, nil
}

func (g *Generator) processFile(engine *Engine, name, outName string) error {
	data, err := os.ReadFile(filepath.Join(g.SourceDir, name))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out, err := engine.RenderBytes(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, outName), out, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
