package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage writes per-year result documents under an output directory
type Storage struct {
	outputDir string
}

// New creates a new Storage instance
func New(outputDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outputDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outputDir = filepath.Join(home, outputDir[2:])
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		outputDir: outputDir,
	}, nil
}

// YearPath returns the output path for one year's document.
func (s *Storage) YearPath(baseName, year string) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.csv", baseName, year))
}

// WriteYear writes doc to {baseName}_{year}.csv inside the output
// directory, silently replacing any existing file. It returns the path of
// the written file.
func (s *Storage) WriteYear(baseName, year, doc string) (string, error) {
	path := s.YearPath(baseName, year)

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing results file: %w", err)
	}

	return path, nil
}
