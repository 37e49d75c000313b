package services

import (
	"errors"
	"strings"
)

var (
	// ErrNoCSVData is returned when the request body decodes to an empty string
	ErrNoCSVData = errors.New("no CSV data provided in request body")

	// ErrEmptyCSV is returned when the body holds no data rows
	ErrEmptyCSV = errors.New("CSV is empty")

	// ErrInvalidEncoding is returned when the body is not valid UTF-8
	ErrInvalidEncoding = errors.New("request body is not valid UTF-8")
)

// MissingColumnsError reports a header lacking one or more required columns
type MissingColumnsError struct {
	Required []string
	Found    []string
}

func (e *MissingColumnsError) Error() string {
	return "CSV must contain columns: " + strings.Join(e.Required, ", ")
}

// IsInputError reports whether err is caused by the caller's input rather than
// an internal failure
func IsInputError(err error) bool {
	var missing *MissingColumnsError
	return errors.Is(err, ErrNoCSVData) || errors.Is(err, ErrEmptyCSV) || errors.As(err, &missing)
}
