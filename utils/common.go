package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseColumns splits a comma-separated column list, trimming blanks.
func ParseColumns(columns string) []string {
	if columns == "" {
		return nil
	}
	parts := strings.Split(columns, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isSafePath(path string) bool {
	if strings.Contains(path, "..") || strings.Contains(path, "~") {
		return false
	}
	cleanPath := filepath.Clean(path)
	return !filepath.IsAbs(cleanPath) && !strings.HasPrefix(cleanPath, "../")
}

// ParseYAMLFile reads YAML file and unmarshals into provided struct pointer.
// Pass "-" to read from stdin.
func ParseYAMLFile[T any](filePath string, out *T) error {
	if filePath == "-" {
		decoder := yaml.NewDecoder(os.Stdin)
		if err := decoder.Decode(out); err != nil {
			return fmt.Errorf("failed to parse YAML from stdin: %w", err)
		}
		return nil
	}

	if !isSafePath(filePath) {
		return fmt.Errorf("invalid file path")
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
	}

	return nil
}

// OptionalBool returns a pointer to b.
func OptionalBool(b bool) *bool {
	return &b
}
