package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctx(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestMsgBodies(t *testing.T) {
	tests := []struct {
		name     string
		write    func(c *gin.Context)
		wantCode int
		wantBody string
	}{
		{"OK", func(c *gin.Context) { OK(c, "done") }, http.StatusOK, `{"msg":"done"}`},
		{"Created", func(c *gin.Context) { Created(c, "made") }, http.StatusCreated, `{"msg":"made"}`},
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "nope") }, http.StatusBadRequest, `{"msg":"nope"}`},
		{"NotFound", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, `{"msg":"gone"}`},
		{"ServerError", func(c *gin.Context) { ServerError(c, "broke", errors.New("why")) },
			http.StatusInternalServerError, `{"msg":"broke","error":"why"}`},
		{"Unavailable", func(c *gin.Context) { Unavailable(c, "down", "db") },
			http.StatusServiceUnavailable, `{"msg":"down","error":"db"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := ctx(t)
			tt.write(c)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
