package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadSource reads the whole compilation unit at path. The returned string
// is the file's full contents; on failure the error names the path.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(data), nil
}

// OutputPath derives the assembly output path from the input path by
// replacing its extension with ".s" (main.c becomes main.s). An input
// without an extension just gains one.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".s"
}
