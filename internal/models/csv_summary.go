package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names every uploaded CSV must provide
const (
	ColumnID       = "id"
	ColumnName     = "name"
	ColumnAmount   = "amount"
	ColumnCategory = "category"
)

// RequiredColumns lists the mandatory header fields in display order
var RequiredColumns = []string{ColumnID, ColumnName, ColumnAmount, ColumnCategory}

// Bounds on a parsed amount. Values outside them cannot be summed in a single
// cheap pass: decimal rescales to the smallest exponent in play.
const (
	MaxAmountExponent = 350
	MaxAmountLength   = 512
)

// SummaryStatusSuccess is the status reported on a successful summary
const SummaryStatusSuccess = "success"

// Row maps column names to the raw values of one CSV data line
type Row map[string]string

// NewRow zips a header with a record. Fields beyond the header are dropped and
// columns beyond the record stay absent; a repeated column name keeps its last value.
func NewRow(header, record []string) Row {
	row := make(Row, len(header))
	for i, column := range header {
		if i >= len(record) {
			break
		}
		row[column] = record[i]
	}
	return row
}

// ToItem projects the row onto a ProcessedItem, returning the parsed amount alongside it
func (r Row) ToItem() (ProcessedItem, decimal.Decimal, error) {
	for _, column := range RequiredColumns {
		if _, ok := r[column]; !ok {
			return ProcessedItem{}, decimal.Zero, fmt.Errorf("missing field %q", column)
		}
	}

	amount, err := ParseAmount(r[ColumnAmount])
	if err != nil {
		return ProcessedItem{}, decimal.Zero, err
	}

	return ProcessedItem{
		ID:       r[ColumnID],
		Name:     r[ColumnName],
		Amount:   amount.InexactFloat64(),
		Category: r[ColumnCategory],
	}, amount, nil
}

// ParseAmount parses a decimal amount, ignoring surrounding whitespace. Amounts
// that do not fit a finite float64 are rejected like non-numeric text.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > MaxAmountLength {
		return decimal.Zero, fmt.Errorf("amount is longer than %d characters", MaxAmountLength)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not convert %q to a number", raw)
	}

	if exp := amount.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return decimal.Zero, fmt.Errorf("amount %q is out of range", raw)
	}
	if math.IsInf(amount.InexactFloat64(), 0) {
		return decimal.Zero, fmt.Errorf("amount %q is out of range", raw)
	}
	return amount, nil
}

// ProcessedItem is a row whose amount passed numeric validation
type ProcessedItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// SummaryStats holds the aggregate figures of one CSV upload
type SummaryStats struct {
	TotalRows        int      `json:"total_rows"`
	ProcessedRows    int      `json:"processed_rows"`
	TotalAmount      float64  `json:"total_amount"`
	AverageAmount    float64  `json:"average_amount"`
	UniqueCategories []string `json:"unique_categories"`
	CategoryCount    int      `json:"category_count"`
}

// SummaryResult is the aggregate of all processed items for one request
type SummaryResult struct {
	Summary SummaryStats    `json:"summary"`
	Items   []ProcessedItem `json:"items"`
}

// SkippedRows returns how many data rows were dropped during aggregation
func (s *SummaryResult) SkippedRows() int {
	return s.Summary.TotalRows - s.Summary.ProcessedRows
}

// SummaryResponse is the success body of the CSV endpoint
type SummaryResponse struct {
	Status  string          `json:"status"`
	Summary SummaryStats    `json:"summary"`
	Items   []ProcessedItem `json:"items"`
}

// NewSummaryResponse wraps a result in the success envelope
func NewSummaryResponse(result *SummaryResult) SummaryResponse {
	return SummaryResponse{
		Status:  SummaryStatusSuccess,
		Summary: result.Summary,
		Items:   result.Items,
	}
}
