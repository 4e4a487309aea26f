package mapgen

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/tkrajina/gpxgo/gpx"
)

// FIT stores positions as 32-bit semicircles; 0x7FFFFFFF marks an
// invalid/absent position.
const semicirclesPerDegree = 11930464.7111 // 2^31 / 180

// loadFITTrack decodes a FIT activity file and routes its record positions
// through the same simplify/flatten/stats pipeline as GPX input, by
// bridging them into a gpx document. Each chained FIT file in the stream
// becomes one track.
func loadFITTrack(path string) Track {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("error reading FIT file", "file", path, "err", err)
		return Track{}
	}

	dec := decoder.New(bytes.NewReader(data))

	var doc gpx.GPX
	decoded := false
	for dec.Next() {
		fitData, err := dec.Decode()
		if err != nil {
			slog.Warn("error decoding FIT file", "file", path, "err", err)
			return Track{}
		}
		decoded = true

		var segment gpx.GPXTrackSegment
		for _, msg := range fitData.Messages {
			if msg.Num != typedef.MesgNumRecord {
				continue
			}
			rec := mesgdef.NewRecord(&msg)
			if rec.PositionLat == 0x7FFFFFFF || rec.PositionLong == 0x7FFFFFFF {
				continue
			}
			var point gpx.GPXPoint
			point.Latitude = float64(rec.PositionLat) / semicirclesPerDegree
			point.Longitude = float64(rec.PositionLong) / semicirclesPerDegree
			point.Timestamp = rec.Timestamp
			segment.Points = append(segment.Points, point)
		}
		if len(segment.Points) > 0 {
			doc.Tracks = append(doc.Tracks, gpx.GPXTrack{Segments: []gpx.GPXTrackSegment{segment}})
		}
	}

	if !decoded {
		slog.Warn("not a FIT file", "file", path)
		return Track{}
	}

	return trackFromGPX(&doc)
}
