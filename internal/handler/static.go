package handler

import (
	"net/http"
	"webgui-server/internal/metrics"
)

// Static returns a handler that serves files from the given base directory
// with standard static-file semantics: an index file or generated listing
// for directories, 404 for paths that resolve to nothing. Request paths are
// normalized before lookup and cannot escape the base directory.
func Static(baseDir string) http.Handler {
	return http.FileServer(http.Dir(baseDir))
}

// NewGUIHandler assembles the handler chain for serving GUI assets:
// static file serving wrapped with CORS injection and request logging.
func NewGUIHandler(baseDir string, m *metrics.Metrics) http.Handler {
	return WithRequestLogging(WithCORS(Static(baseDir)), m)
}
