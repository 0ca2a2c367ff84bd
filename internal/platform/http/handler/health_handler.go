// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Live handles the GET / liveness endpoint with a plain-text response.
func Live(c *gin.Context) {
	c.String(200, "API online")
}

// Health handles the /healthz service health check endpoint.
// It responds appropriately per HTTP method and suppresses caching.
func Health(c *gin.Context) {
	// Explicitly prevent caching
	c.Header("Cache-Control", "no-store")

	// Return 200 or 204 for all GET/HEAD/OPTIONS requests
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
