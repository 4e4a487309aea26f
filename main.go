package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff"

	"marathonmap/mapgen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("map generation failed", "err", err)
		os.Exit(1)
	}
}

// run is the whole pipeline: resolve config, load the primary recording,
// build the route catalog, load styles, render and write the page. A nil
// return means exit 0 — including the case where the primary recording
// has no usable points and no output is written.
func run(args []string) error {
	// Values from a local .env become part of the environment before flag
	// parsing, so GOOGLE_MAPS_API_KEY can live there.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("marathonmap", flag.ContinueOnError)
	var (
		output   = fs.String("output", "marathon_map.html", "output HTML file")
		routes   = fs.String("routes", "routes", "directory of route recordings")
		styles   = fs.String("styles", "styles/*.json", "glob of map style JSON files")
		tmplPath = fs.String("template", "", "HTML template file (built-in when empty)")
		apiKey   = fs.String("google-maps-api-key", "", "Google Maps API key")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return err
	}

	if *apiKey == "" {
		return errors.New("missing GOOGLE_MAPS_API_KEY")
	}

	primary := fs.Arg(0)
	if primary == "" {
		found, err := mapgen.FindTrackFiles(*routes)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("no recording given and none found in %s", *routes)
		}
		primary = found[0]
		slog.Info("no recording given, using first in routes directory", "file", primary)
	}

	slog.Info("processing recording", "file", primary)
	track := mapgen.LoadTrack(primary)
	if len(track.Coords) == 0 {
		slog.Warn("no usable points in recording, nothing to render", "file", primary)
		return nil
	}

	catalog := mapgen.BuildCatalog(*routes)
	catalog[filepath.Base(primary)] = track

	styleDocs := mapgen.LoadStyles(*styles)
	defaultStyle := "default"
	if names := mapgen.StyleNames(styleDocs); len(names) > 0 {
		defaultStyle = names[0]
	}

	slog.Info("rendering page", "routes", len(catalog), "styles", len(styleDocs))
	html, err := mapgen.Render(mapgen.RenderContext{
		APIKey:       *apiKey,
		Primary:      track,
		Styles:       styleDocs,
		DefaultStyle: defaultStyle,
		Routes:       catalog,
		DefaultRoute: filepath.Base(primary),
	}, *tmplPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("map saved", "file", *output, "km", track.DistanceKm)
	return nil
}
