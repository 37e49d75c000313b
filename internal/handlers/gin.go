package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"funcapp-api/internal/middleware"
	"funcapp-api/pkg/lambda"
)

type functionHandler func(ctx context.Context, req *lambda.Request) (*lambda.Response, error)

// serveGin runs a function handler against a gin request
func serveGin(c *gin.Context, handle functionHandler) {
	req, err := lambda.FromHTTP(c.Request, c.GetString(middleware.RequestIDKey))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := handle(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		resp = lambda.InternalError()
	}

	if err := resp.Send(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
