package mapgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// RenderContext carries everything the page template needs: the map
// credential, the primary route, the loaded styles and the full catalog.
type RenderContext struct {
	APIKey       string
	Primary      Track
	Styles       map[string]any
	DefaultStyle string
	Routes       map[string]Track
	DefaultRoute string
}

// pageData is the flattened field set handed to the template. Coordinate,
// style and catalog values are pre-marshaled so the template can embed
// them directly in script blocks.
type pageData struct {
	APIKey          string
	RouteCoords     template.JS
	AllStyles       template.JS
	StyleNames      []string
	DefaultStyle    string
	TotalDistanceKm float64
	StartTime       string
	Routes          template.JS
	DefaultRoute    string
}

// Render substitutes ctx into the page template and returns the document.
// An empty templatePath selects the built-in template; a path that cannot
// be loaded is a configuration error.
func Render(ctx RenderContext, templatePath string) (string, error) {
	var (
		tmpl *template.Template
		err  error
	)
	if templatePath == "" {
		tmpl, err = template.New("map").Parse(defaultTemplate)
	} else {
		tmpl, err = template.ParseFiles(templatePath)
	}
	if err != nil {
		return "", fmt.Errorf("load template: %w", err)
	}

	data, err := buildPageData(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

func buildPageData(ctx RenderContext) (pageData, error) {
	coords, err := json.Marshal(ctx.Primary.Coords)
	if err != nil {
		return pageData{}, fmt.Errorf("encode coordinates: %w", err)
	}
	styles, err := json.Marshal(ctx.Styles)
	if err != nil {
		return pageData{}, fmt.Errorf("encode styles: %w", err)
	}
	routes, err := json.Marshal(ctx.Routes)
	if err != nil {
		return pageData{}, fmt.Errorf("encode routes: %w", err)
	}

	return pageData{
		APIKey:          ctx.APIKey,
		RouteCoords:     template.JS(coords),
		AllStyles:       template.JS(styles),
		StyleNames:      StyleNames(ctx.Styles),
		DefaultStyle:    ctx.DefaultStyle,
		TotalDistanceKm: ctx.Primary.DistanceKm,
		StartTime:       ctx.Primary.StartTime,
		Routes:          template.JS(routes),
		DefaultRoute:    ctx.DefaultRoute,
	}, nil
}
