package disk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileManager persists a save at `<cart-stem>.disk`, matching the
// console's wasm4-compatible save file convention. A missing file reads
// as all-zero; a file shorter than Size bytes is zero-padded.
type FileManager struct {
	path string
}

// NewFileManager derives the save path from cartPath by replacing its
// extension with ".disk", or uses path directly if one is supplied.
func NewFileManager(cartPath, path string) *FileManager {
	if path == "" {
		path = diskPathFor(cartPath)
	}
	return &FileManager{path: path}
}

func diskPathFor(cartPath string) string {
	if ext := filepath.Ext(cartPath); ext != "" {
		return strings.TrimSuffix(cartPath, ext) + ".disk"
	}
	return cartPath + ".disk"
}

func (f *FileManager) Read() ([Size]byte, error) {
	var out [Size]byte

	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("disk: read %s: %w", f.path, err)
	}

	copy(out[:], bytes)
	return out, nil
}

func (f *FileManager) Write(data [Size]byte) error {
	if err := os.WriteFile(f.path, data[:], 0o644); err != nil {
		return fmt.Errorf("disk: write %s: %w", f.path, err)
	}
	return nil
}
