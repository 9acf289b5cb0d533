package handler

import (
	"log/slog"
	"net/http"
)

// Version is the API version reported by the metadata endpoint.
const Version = "1.0.0"

// MetaHandler serves the service metadata and health endpoints.
type MetaHandler struct {
	logger *slog.Logger
}

func NewMetaHandler(logger *slog.Logger) *MetaHandler {
	return &MetaHandler{logger: logger}
}

// metadata describes the service and its endpoint map. This endpoint is the
// one response not wrapped in the success envelope — it predates it and
// clients rely on the flat shape.
type metadata struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleIndex returns service name, version, and the endpoint map.
//
// HTTP: GET /
func (h *MetaHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeRawJSON(w, http.StatusOK, metadata{
		Message: "Property Listings API",
		Version: Version,
		Endpoints: map[string]string{
			"health":   "/health",
			"users":    "/api/users",
			"listings": "/api/listings",
		},
	})
}

// HandleHealth reports process liveness.
//
// HTTP: GET /health
func (h *MetaHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
