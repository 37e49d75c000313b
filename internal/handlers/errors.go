package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"funcapp-api/internal/services"
	"funcapp-api/pkg/lambda"
)

// Error messages returned by the process_csv function
const (
	msgNoCSVData        = "No CSV data provided in request body"
	msgEmptyCSV         = "CSV is empty"
	msgInternalCSV      = "Internal error processing CSV"
	msgMethodNotAllowed = "Method not allowed"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MissingColumnsResponse is returned when the CSV header lacks required columns
type MissingColumnsResponse struct {
	Error        string   `json:"error"`
	FoundColumns []string `json:"found_columns"`
}

// InternalErrorResponse carries the underlying message of an unexpected failure
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// csvErrorResponse maps a summary error onto its status code and body
func csvErrorResponse(err error) (*lambda.Response, error) {
	var missing *services.MissingColumnsError

	switch {
	case errors.Is(err, services.ErrNoCSVData):
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoCSVData})
	case errors.Is(err, services.ErrEmptyCSV):
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyCSV})
	case errors.As(err, &missing):
		return lambda.JSON(http.StatusBadRequest, MissingColumnsResponse{
			Error:        missing.Error(),
			FoundColumns: missing.Found,
		})
	default:
		return internalCSVError(err.Error())
	}
}

func internalCSVError(details string) (*lambda.Response, error) {
	return lambda.JSON(http.StatusInternalServerError, InternalErrorResponse{
		Error:   msgInternalCSV,
		Details: details,
	})
}

func panicMessage(recovered any) string {
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(recovered)
}
