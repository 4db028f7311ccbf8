package handler

import (
	"net/http"

	"github.com/itinero-app/itinero/backend/spec"
)

// docsPage is a minimal HTML shell that renders the embedded OpenAPI spec
// with the Scalar API reference viewer loaded from its CDN.
const docsPage = `<!doctype html>
<html>
<head>
  <title>Itinero API Reference</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.yaml"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// handleOpenAPISpec handles GET /openapi.yaml.
// Serving the spec from the binary keeps it in sync with the running code.
func (s *Server) handleOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	//nolint:errcheck
	w.Write(spec.OpenAPI)
}

// handleDocs handles GET /docs.
func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck
	w.Write([]byte(docsPage))
}
