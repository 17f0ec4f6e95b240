package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Readiness reports whether the document store is reachable.
type Readiness interface {
	Ready(ctx context.Context) bool
}

type HealthController struct {
	Store Readiness
}

func NewHealthController(store Readiness) *HealthController {
	return &HealthController{Store: store}
}

// GET /health
func (ctl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"msg":      "ok",
		"database": ctl.Store.Ready(c.Request.Context()),
	})
}

// GET /ready
func (ctl *HealthController) Ready(c *gin.Context) {
	if !ctl.Store.Ready(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "not ready", "error": "database not connected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ready"})
}
