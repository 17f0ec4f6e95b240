package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every body carries a "msg" field; server faults additionally carry the
// underlying error string.

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"msg": msg})
}
func Created(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, gin.H{"msg": msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"msg": msg})
}
func ServerError(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"msg": msg, "error": err.Error()})
}
func Unavailable(c *gin.Context, msg string, detail string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"msg": msg, "error": detail})
}
