package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxDiagnosticErrorLen caps error text leaked through the diagnostics endpoint.
const maxDiagnosticErrorLen = 80

// maxDiagnosticCollections caps how many collection names the diagnostics
// endpoint reports.
const maxDiagnosticCollections = 10

// SystemHandler serves the API banner and the store diagnostics endpoint.
type SystemHandler struct {
	db *mongo.Database
}

// NewSystemHandler creates a new SystemHandler. db may be nil when the store
// was never initialized; the diagnostics endpoint reports that instead of
// failing.
func NewSystemHandler(db *mongo.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Root returns the API banner.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": "broCoachme API", "status": "ok"})
}

// TestDatabaseResponse mirrors the shape the frontend's connectivity page
// expects, including the emoji status strings.
type TestDatabaseResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabase reports store connectivity and lists up to ten collection
// names. Purely observational; errors are caught, truncated, and reported in
// the payload rather than failing the request.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	resp := TestDatabaseResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Database = "✅ Available"
	resp.DatabaseURL = "❌ Not Set"
	if os.Getenv("DATABASE_URI") != "" {
		resp.DatabaseURL = "✅ Set"
	}
	resp.DatabaseName = h.db.Name()
	resp.ConnectionStatus = "Connected"

	collections, err := h.db.ListCollectionNames(c.Request.Context(), bson.M{})
	if err != nil {
		resp.Database = "⚠️ Connected but Error: " + truncateError(err, maxDiagnosticErrorLen)
		c.JSON(http.StatusOK, resp)
		return
	}

	if len(collections) > maxDiagnosticCollections {
		collections = collections[:maxDiagnosticCollections]
	}
	resp.Collections = collections
	resp.Database = "✅ Connected & Working"

	c.JSON(http.StatusOK, resp)
}

// truncateError renders an error message capped at max characters.
func truncateError(err error, max int) string {
	msg := err.Error()
	if len(msg) > max {
		msg = msg[:max]
	}
	return msg
}
