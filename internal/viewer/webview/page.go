package webview

import (
	"html/template"
)

// modelViewerScript is the published model-viewer web component
const modelViewerScript = "https://ajax.googleapis.com/ajax/libs/model-viewer/3.5.0/model-viewer.min.js"

var pageTemplate = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}}</title>
<script type="module" src="{{.Script}}"></script>
<style>
  html, body { margin: 0; height: 100%; background: #101418; color: #e8e8e8; font-family: sans-serif; }
  model-viewer { width: 100%; height: 85%; }
  .error { display: none; padding: 2em; color: #ff6b6b; }
  model-viewer[error] + .error { display: block; }
  p { margin: 0.5em 1em; }
</style>
</head>
<body>
<model-viewer id="model" src="{{.ModelURL}}" alt="{{.Name}}" camera-controls interaction-prompt="none"
  camera-orbit="0deg 75deg auto" max-camera-orbit="auto 180deg auto" min-camera-orbit="auto 0deg auto"
  shadow-intensity="1" exposure="1"></model-viewer>
<div class="error">Failed to load the 3D model.</div>
<p>{{.Description}}</p>
<script>
  document.getElementById("model").addEventListener("error", function (e) {
    e.target.setAttribute("error", "");
  });
</script>
</body>
</html>
`))

type pageData struct {
	Name        string
	ModelURL    string
	Description string
	Script      string
}
