package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"funcapp-api/pkg/lambda"
)

// Function key locations, matching the Azure Functions conventions
const (
	FunctionKeyHeader = "X-Functions-Key"
	FunctionKeyQuery  = "code"
)

// FunctionKeyValid reports whether req carries the expected function key.
// An empty expected key disables the check.
func FunctionKeyValid(expected string, req *lambda.Request) bool {
	if expected == "" {
		return true
	}

	presented := req.Header(FunctionKeyHeader)
	if presented == "" {
		presented = req.Query(FunctionKeyQuery)
	}
	if presented == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// Unauthorized is returned when the function key is missing or wrong
func Unauthorized() *lambda.Response {
	resp, _ := lambda.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	return resp
}

// FunctionKeyAuth rejects requests lacking the function key
func FunctionKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		req := &lambda.Request{
			Headers:     map[string]string{FunctionKeyHeader: c.GetHeader(FunctionKeyHeader)},
			QueryParams: map[string]string{FunctionKeyQuery: c.Query(FunctionKeyQuery)},
		}
		if !FunctionKeyValid(expected, req) {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
			}).Warn("Function key rejected")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
