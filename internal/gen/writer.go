package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file to its Path, creating directories
// as needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		path := file.Path()

		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", path, err)
		}
	}

	return nil
}

// writeDebugUnformatted stores source that go/format rejected next to where
// the output would go, as name.unformatted.go. It is a no-op without a
// directory or file name.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	debugName := strings.TrimSuffix(filepath.Base(filename), ".go") + ".unformatted.go"
	path := filepath.Join(dir, debugName)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(path, content, filePerm)
}
