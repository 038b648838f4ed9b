package api

import (
	"encoding/json"
	"net/http"
	"sync"
)

// loadSwagger parses the embedded document once per process.
var loadSwagger = sync.OnceValues(GetSwagger)

// RegisterDocsRoutes mounts the API documentation:
//
//	GET /                  redirect to /docs
//	GET /docs              Swagger UI
//	GET /docs/openapi      document as JSON
//	GET /docs/openapi.yaml document as written
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /docs", serveSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", serveDocumentJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", serveDocumentYAML)
}

func serveDocumentJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := loadSwagger()
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, "Failed to encode OpenAPI document", http.StatusInternalServerError)
	}
}

func serveDocumentYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPIDocument) //nolint:errcheck // client went away
}

func serveSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerPage)) //nolint:errcheck // client went away
}

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>ATM API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({ url: '/docs/openapi', dom_id: '#swagger-ui', deepLinking: true });
    };
  </script>
</body>
</html>`
