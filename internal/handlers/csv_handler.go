package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"funcapp-api/internal/logging"
	"funcapp-api/internal/models"
	"funcapp-api/internal/services"
	"funcapp-api/pkg/lambda"
)

// FunctionProcessCSV is the name of the CSV summary function
const FunctionProcessCSV = "process_csv"

// CSVSummaryHandler handles the process_csv function
type CSVSummaryHandler struct {
	csvService services.CSVSummaryService
	metrics    services.MetricsRecorder
}

// NewCSVSummaryHandler creates a new CSV summary handler
func NewCSVSummaryHandler(csvService services.CSVSummaryService, metrics services.MetricsRecorder) *CSVSummaryHandler {
	if metrics == nil {
		metrics = services.NoopMetrics{}
	}
	return &CSVSummaryHandler{
		csvService: csvService,
		metrics:    metrics,
	}
}

// @Summary Summarize CSV
// @Description Validates an uploaded CSV (id, name, amount, category) and returns totals, averages and categories
// @Tags functions
// @Accept plain
// @Produce json
// @Param csv body string true "CSV text with a header row"
// @Success 200 {object} models.SummaryResponse
// @Failure 400 {object} MissingColumnsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /process_csv [post]
func (h *CSVSummaryHandler) ProcessCSV(c *gin.Context) {
	serveGin(c, h.HandleProcessCSV)
}

// HandleProcessCSV summarizes the CSV carried in the request body. Input
// problems become 400 responses; anything unexpected, including a panic in
// the pipeline, becomes a 500 response carrying the underlying message.
func (h *CSVSummaryHandler) HandleProcessCSV(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	start := time.Now()
	ctx = logging.WithRequestID(ctx, req.RequestID)
	log := logging.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Error processing CSV")
			resp, err = internalCSVError(panicMessage(r))
		}
		if resp != nil {
			h.metrics.RecordRequest(FunctionProcessCSV, resp.StatusCode, time.Since(start))
		}
	}()

	if req.Method != http.MethodPost {
		return lambda.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: msgMethodNotAllowed})
	}

	log.Info("Processing CSV data from HTTP request.")

	result, err := h.csvService.Summarize(ctx, req.Body)
	if err != nil {
		entry := log.WithError(err)
		if services.IsInputError(err) {
			entry.Warn("Rejected CSV upload")
		} else {
			entry.Error("Error processing CSV")
		}
		return csvErrorResponse(err)
	}

	log.WithFields(logrus.Fields{
		"processed_rows": result.Summary.ProcessedRows,
		"skipped_rows":   result.SkippedRows(),
	}).Debug("CSV summary built")

	resp, err = lambda.IndentedJSON(http.StatusOK, models.NewSummaryResponse(result))
	if err != nil {
		log.WithError(err).Error("Error processing CSV")
		return internalCSVError(err.Error())
	}
	return resp, nil
}
