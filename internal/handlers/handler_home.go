package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness probe.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// noRoute answers requests for unknown paths.
func noRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": invalidInputPrefix + "No static resource " + c.Request.URL.Path + "."})
}
