package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasconst/internal/fileutil"
)

// WriteFile writes the generated file into outputDir, creating the directory
// if it doesn't exist. File names containing path separators are rejected so
// a generated name can never escape the directory.
func (r *Result) WriteFile(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("generator: failed to create output directory: %w", err)
	}
	if filepath.Base(r.File.Name) != r.File.Name {
		return fmt.Errorf("generator: invalid file name %q: must not contain path separators", r.File.Name)
	}
	path := filepath.Join(outputDir, r.File.Name)
	if err := os.WriteFile(path, r.File.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file %s: %w", r.File.Name, err)
	}
	return nil
}

// WriteFile writes the file content to the given path, creating parent
// directories as needed.
func (f *GeneratedFile) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("generator: failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file: %w", err)
	}
	return nil
}
