package mapgen

// defaultTemplate is the built-in page: a full-screen Google Map with the
// primary route drawn, a selector for every loaded route, a style switcher
// and a stats panel. A custom template passed with -template replaces it
// wholesale.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Marathon Map</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        html, body, #map { height: 100%; margin: 0; padding: 0; }
        #panel {
            position: absolute; top: 10px; left: 10px; z-index: 5;
            background: rgba(255, 255, 255, 0.95); border-radius: 6px;
            padding: 12px 16px; font-family: sans-serif; font-size: 14px;
            box-shadow: 0 1px 4px rgba(0, 0, 0, 0.3);
        }
        #panel select { display: block; margin-top: 6px; width: 100%; }
        #stats { margin-top: 8px; color: #444; }
    </style>
</head>
<body>
    <div id="panel">
        <strong>Marathon Map</strong>
        <select id="route-select"></select>
        <select id="style-select">
        {{range .StyleNames}}<option value="{{.}}">{{.}}</option>
        {{end}}</select>
        <div id="stats">{{.TotalDistanceKm}} km &middot; {{.StartTime}}</div>
    </div>
    <div id="map"></div>
    <script>
        var routeCoords = {{.RouteCoords}};
        var allStyles = {{.AllStyles}};
        var routes = {{.Routes}};
        var defaultStyle = {{.DefaultStyle}};
        var defaultRoute = {{.DefaultRoute}};

        var map, polyline;

        function showRoute(name) {
            var route = routes[name] || { coords: routeCoords };
            if (!route.coords.length) return;

            if (polyline) polyline.setMap(null);
            polyline = new google.maps.Polyline({
                path: route.coords,
                strokeColor: '#e63946',
                strokeOpacity: 0.9,
                strokeWeight: 4,
            });
            polyline.setMap(map);

            var bounds = new google.maps.LatLngBounds();
            route.coords.forEach(function (c) { bounds.extend(c); });
            map.fitBounds(bounds);

            if (route.distance !== undefined) {
                document.getElementById('stats').textContent =
                    route.distance + ' km · ' + route.date;
            }
        }

        function initMap() {
            map = new google.maps.Map(document.getElementById('map'), {
                zoom: 13,
                styles: allStyles[defaultStyle] || [],
            });

            var routeSelect = document.getElementById('route-select');
            Object.keys(routes).sort().forEach(function (name) {
                var option = document.createElement('option');
                option.value = name;
                option.textContent = name;
                option.selected = name === defaultRoute;
                routeSelect.appendChild(option);
            });
            routeSelect.addEventListener('change', function () {
                showRoute(this.value);
            });

            var styleSelect = document.getElementById('style-select');
            styleSelect.value = defaultStyle;
            styleSelect.addEventListener('change', function () {
                map.setOptions({ styles: allStyles[this.value] || [] });
            });

            showRoute(defaultRoute);
        }
    </script>
    <script async
        src="https://maps.googleapis.com/maps/api/js?key={{.APIKey}}&callback=initMap">
    </script>
</body>
</html>
`
