package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"funcapp-api/internal/logging"
	"funcapp-api/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvSummaryService validates uploaded CSV data and aggregates its amounts
type csvSummaryService struct {
	metrics MetricsRecorder
}

// NewCSVSummaryService creates a new CSV summary service
func NewCSVSummaryService(metrics MetricsRecorder) CSVSummaryService {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &csvSummaryService{metrics: metrics}
}

// Summarize parses body as CSV with a header row and aggregates the rows that
// carry a numeric amount. Rows that fail validation are skipped, not reported.
func (s *csvSummaryService) Summarize(ctx context.Context, body []byte) (*models.SummaryResult, error) {
	log := logging.FromContext(ctx)

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidEncoding, invalidUTF8Offset(body))
	}
	if len(body) == 0 {
		return nil, ErrNoCSVData
	}

	header, records, err := readCSV(bytes.TrimPrefix(body, utf8BOM))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}

	columns := uniqueColumns(header)
	for _, required := range models.RequiredColumns {
		if !slices.Contains(columns, required) {
			return nil, &MissingColumnsError{Required: models.RequiredColumns, Found: columns}
		}
	}

	total := decimal.Zero
	categories := make(map[string]struct{})
	items := make([]models.ProcessedItem, 0, len(records))

	for i, record := range records {
		row := models.NewRow(header, record)

		item, amount, err := row.ToItem()
		if err != nil {
			log.WithFields(logrus.Fields{
				"row":   i + 1,
				"data":  record,
				"error": err.Error(),
			}).Warn("Skipping invalid row")
			continue
		}

		total = total.Add(amount)
		categories[item.Category] = struct{}{}
		items = append(items, item)
	}

	average := decimal.Zero
	if len(items) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(items))))
	}

	result := &models.SummaryResult{
		Summary: models.SummaryStats{
			TotalRows:        len(records),
			ProcessedRows:    len(items),
			TotalAmount:      total.Round(2).InexactFloat64(),
			AverageAmount:    average.Round(2).InexactFloat64(),
			UniqueCategories: slices.Sorted(maps.Keys(categories)),
			CategoryCount:    len(categories),
		},
		Items: items,
	}
	if result.Summary.UniqueCategories == nil {
		result.Summary.UniqueCategories = []string{}
	}

	s.metrics.RecordRows(result.Summary.ProcessedRows, result.SkippedRows())
	s.metrics.RecordAmount(result.Summary.TotalAmount)

	log.WithFields(logrus.Fields{
		"total_rows":     result.Summary.TotalRows,
		"processed_rows": result.Summary.ProcessedRows,
	}).Infof("Successfully processed %d items. Total: $%s", len(items), total.StringFixed(2))

	return result, nil
}

// readCSV returns the header and the data records. Blank lines are skipped and
// records may carry more or fewer fields than the header.
func readCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV rows: %w", err)
	}
	return header, records, nil
}

// uniqueColumns keeps the first occurrence of each header name, in order
func uniqueColumns(header []string) []string {
	seen := make(map[string]struct{}, len(header))
	columns := make([]string, 0, len(header))
	for _, column := range header {
		if _, ok := seen[column]; ok {
			continue
		}
		seen[column] = struct{}{}
		columns = append(columns, column)
	}
	return columns
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
