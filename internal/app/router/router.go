// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	userhandler "userhub_backend/internal/feature/users/transport/handler"
	"userhub_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with the directory routes and the CORS
// allow-list middleware. Requests from origins outside the allow-list are
// rejected before they reach any handler; requests without an Origin header
// (curl, server-to-server) always pass.
func NewRouter(users *userhandler.UserHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Liveness probe
	r.GET("/", handler.Live)
	r.GET("/healthz", handler.Health)

	// User directory
	r.POST("/users", users.Create)
	r.GET("/users", users.List)
	r.PUT("/users/:id", users.Update)
	r.DELETE("/users/:id", users.Delete)

	return r
}
