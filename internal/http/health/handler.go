package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Handler serves the banner and the store diagnostic endpoint. Unlike the
// API handlers it catches store errors and reports them as text instead
// of failing the request.
type Handler struct {
	db      *mongo.Database
	urlSet  bool
	nameSet bool
}

func NewHandler(db *mongo.Database, urlSet, nameSet bool) *Handler {
	return &Handler{db: db, urlSet: urlSet, nameSet: nameSet}
}

type rootResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rootResponse{Message: "Centavo backend is running"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type statusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus(h.urlSet),
		DatabaseName:     envStatus(h.nameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db != nil {
		resp.Database, resp.ConnectionStatus, resp.Collections = h.probe(r)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// probe pings the store and lists collections. Errors are truncated into
// the status string rather than returned.
func (h *Handler) probe(r *http.Request) (database, status string, collections []string) {
	collections = []string{}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return "error: " + truncate(err.Error(), 50), "not connected", collections
	}

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return "connected but error: " + truncate(err.Error(), 50), "connected", collections
	}

	if len(names) > 10 {
		names = names[:10]
	}

	return "connected", "connected", names
}

func envStatus(set bool) string {
	if set {
		return "set"
	}

	return "not set"
}

// truncate shortens s to at most n runes, never splitting a multi-byte
// character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
