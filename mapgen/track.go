package mapgen

import (
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"
)

// simplifyTolerance is the maximum deviation, in meters, between the
// original path and its simplified form. Long recordings would otherwise
// blow up the size of the generated page.
const simplifyTolerance = 10.0

// noStartTime is what the stats panel shows for recordings without timestamps.
const noStartTime = "N/A"

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Track is a simplified recording: its coordinates in recording order plus
// summary stats. The zero value is the "no data" sentinel returned when a
// recording cannot be parsed; callers must skip tracks with no coordinates.
type Track struct {
	Coords     []Coordinate `json:"coords"`
	DistanceKm float64      `json:"distance"`
	StartTime  string       `json:"date"`
}

// LoadTrack reads a recording and returns its simplified track. Parse
// failures are logged and yield the sentinel Track{}, never an error.
func LoadTrack(path string) Track {
	if strings.EqualFold(filepath.Ext(path), ".fit") {
		return loadFITTrack(path)
	}
	return loadGPXTrack(path)
}

func loadGPXTrack(path string) Track {
	doc, err := gpx.ParseFile(path)
	if err != nil {
		slog.Warn("error parsing GPX", "file", path, "err", err)
		return Track{}
	}
	return trackFromGPX(doc)
}

// trackFromGPX simplifies each track in place, then flattens all segments
// in document order. Elevation and per-point timestamps are discarded.
func trackFromGPX(doc *gpx.GPX) Track {
	doc.SimplifyTracks(simplifyTolerance)

	var coords []Coordinate
	for _, track := range doc.Tracks {
		for _, segment := range track.Segments {
			for _, point := range segment.Points {
				coords = append(coords, Coordinate{Lat: point.Latitude, Lng: point.Longitude})
			}
		}
	}

	distanceKm := math.Round(doc.Length2D()/1000*100) / 100

	start := noStartTime
	if bounds := doc.TimeBounds(); !bounds.StartTime.IsZero() {
		start = bounds.StartTime.Format("2006-01-02 15:04")
	}

	return Track{Coords: coords, DistanceKm: distanceKm, StartTime: start}
}
