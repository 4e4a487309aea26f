package mapgen

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadStyles reads every JSON style file matching pattern, in sorted
// order, into a map keyed by filename stem. Style contents are opaque to
// the generator; they are forwarded to the map widget as-is. A file that
// cannot be read or parsed is logged and skipped, never fatal.
func LoadStyles(pattern string) map[string]any {
	styles := make(map[string]any)

	files, err := filepath.Glob(pattern)
	if err != nil {
		slog.Warn("bad style pattern", "pattern", pattern, "err", err)
		return styles
	}
	sort.Strings(files)

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			slog.Warn("skipping style", "file", file, "err", err)
			continue
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			slog.Warn("skipping style", "file", file, "err", err)
			continue
		}
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		styles[name] = doc
		slog.Info("loaded style", "name", name)
	}

	return styles
}

// StyleNames returns the style names in sorted order.
func StyleNames(styles map[string]any) []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
