package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"funcapp-api/internal/logging"
	"funcapp-api/internal/services"
	"funcapp-api/pkg/lambda"
)

// FunctionHTTPTrigger is the name of the greeting function
const FunctionHTTPTrigger = "http_trigger"

// GreetingHandler handles the http_trigger function
type GreetingHandler struct {
	greetingService services.GreetingService
	metrics         services.MetricsRecorder
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greetingService services.GreetingService, metrics services.MetricsRecorder) *GreetingHandler {
	if metrics == nil {
		metrics = services.NoopMetrics{}
	}
	return &GreetingHandler{
		greetingService: greetingService,
		metrics:         metrics,
	}
}

// @Summary Greeting
// @Description Returns a personalized greeting when a name is given in the query string or JSON body
// @Tags functions
// @Accept json
// @Produce plain
// @Param name query string false "Name to greet"
// @Param body body models.GreetingRequest false "Name to greet when the query string has none"
// @Success 200 {string} string
// @Failure 401 {object} ErrorResponse
// @Router /http_trigger [get]
// @Router /http_trigger [post]
func (h *GreetingHandler) HTTPTrigger(c *gin.Context) {
	serveGin(c, h.HandleHTTPTrigger)
}

// HandleHTTPTrigger greets the caller. It never fails: a malformed body is
// treated as if no name had been given.
func (h *GreetingHandler) HandleHTTPTrigger(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	start := time.Now()
	log := logging.FromContext(logging.WithRequestID(ctx, req.RequestID))
	log.Info("HTTP trigger function processed a request.")

	name := h.greetingService.ResolveName(req.Query("name"), req.Body)
	resp := lambda.Text(http.StatusOK, h.greetingService.Greet(name))

	h.metrics.RecordRequest(FunctionHTTPTrigger, resp.StatusCode, time.Since(start))
	return resp, nil
}
