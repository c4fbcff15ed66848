package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CORSMiddleware permits cross-origin requests from any origin. The API is
// consumed by a browser frontend served from a different host.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// coachIDFromQuery parses the caller-supplied coach_id query parameter.
// There is no session concept; the caller is trusted to pass their own ID.
func coachIDFromQuery(c *gin.Context) (primitive.ObjectID, bool) {
	coachIDStr := c.Query("coach_id")
	if coachIDStr == "" {
		abortWithError(c, http.StatusBadRequest, "coach_id query parameter is required")
		return primitive.NilObjectID, false
	}
	coachID, err := primitive.ObjectIDFromHex(coachIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid coach_id format")
		return primitive.NilObjectID, false
	}
	return coachID, true
}

// objectIDFromParam parses an ObjectID path segment, aborting with 400 on
// malformed input.
func objectIDFromParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
