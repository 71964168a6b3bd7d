package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// WriteCSV writes a header and records to path, creating the parent
// directory if needed. Artifacts in a shared output directory follow
// last-writer-wins on name collision.
func WriteCSV(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write rows of %s: %w", path, err)
	}
	return nil
}

// NewRunID returns a short random identifier used to tag one analysis
// run in logs and persisted rows.
func NewRunID() (string, error) {
	return gonanoid.New(8)
}
