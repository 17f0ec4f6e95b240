package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubReadiness bool

func (s stubReadiness) Ready(context.Context) bool { return bool(s) }

func TestRequireStore(t *testing.T) {
	tests := []struct {
		name     string
		ready    bool
		wantCode int
	}{
		{"passes requests through when ready", true, http.StatusOK},
		{"rejects with 503 when store is down", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequireStore(stubReadiness(tt.ready)))
			r.GET("/menu", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"msg": "ok"})
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if !tt.ready {
				assert.JSONEq(t, `{"msg":"Service unavailable","error":"database not connected"}`, w.Body.String())
			}
		})
	}
}
