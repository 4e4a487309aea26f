package mapgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// trackExts lists the recording extensions a directory scan picks up.
var trackExts = map[string]bool{
	".gpx": true,
	".fit": true,
}

// BuildCatalog loads every recording directly inside dir, sorted by
// filename, into a map keyed by base filename. Recordings that yield no
// usable coordinates are logged and excluded. An unreadable directory
// yields an empty catalog; the caller is responsible for inserting the
// primary route afterwards.
func BuildCatalog(dir string) map[string]Track {
	catalog := make(map[string]Track)

	paths, err := FindTrackFiles(dir)
	if err != nil {
		slog.Warn("error reading routes directory", "dir", dir, "err", err)
		return catalog
	}

	for _, path := range paths {
		name := filepath.Base(path)
		track := LoadTrack(path)
		if len(track.Coords) == 0 {
			slog.Warn("skipping route with no usable points", "file", name)
			continue
		}
		slog.Info("loaded route", "file", name, "points", len(track.Coords), "km", track.DistanceKm)
		catalog[name] = track
	}

	return catalog
}

// FindTrackFiles returns the recording paths directly inside dir, sorted
// by filename. Subdirectories are not descended into.
func FindTrackFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read routes directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !trackExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
