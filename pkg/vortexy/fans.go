package vortexy

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/parser"
)

// supportedInputs are the table file extensions picked up from directories.
var supportedInputs = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// ParseFans reads the fan measurement table at path with full precision.
// Incomplete rows are dropped; a table without column groups yields an
// empty set.
func ParseFans(path string, opts Options) (*models.FanSet, error) {
	log := opts.Log().WithField("file", path)

	set, stats, err := parser.ParseFans(path, opts.Sheet, -1)
	if err != nil {
		return nil, NewFileError(path, "read", err)
	}

	for _, name := range stats.Duplicates {
		log.WithField("fan", name).Warn("Duplicate fan name, keeping the last column group")
	}
	for _, fan := range set.Fans() {
		entry := log.WithField("fan", fan.Name)
		if dropped := stats.DroppedRows[fan.Name]; dropped > 0 {
			entry.WithField("rows", dropped).Debug("Dropped incomplete rows")
		}
		entry.WithField("samples", len(fan.Samples)).Info("Processed fan")
	}

	return set, nil
}

// ListInputs returns the table files in dir sorted by name, skipping
// Office lock files ("~$...") and unsupported extensions.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if !supportedInputs[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)

	return paths, nil
}

// projectName returns the file name of path without its extension.
func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeFile writes data to path, creating the parent directory.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
