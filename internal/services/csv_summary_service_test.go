package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcapp-api/internal/models"
)

type recordingMetrics struct {
	processed int
	skipped   int
	amounts   []float64
}

func (m *recordingMetrics) RecordRequest(string, int, time.Duration) {}

func (m *recordingMetrics) RecordRows(processed, skipped int) {
	m.processed += processed
	m.skipped += skipped
}

func (m *recordingMetrics) RecordAmount(total float64) {
	m.amounts = append(m.amounts, total)
}

func summarize(t *testing.T, body string) (*models.SummaryResult, error) {
	t.Helper()
	return NewCSVSummaryService(nil).Summarize(context.Background(), []byte(body))
}

func TestSummarize_ExampleUpload(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := NewCSVSummaryService(metrics)

	body := "id,name,amount,category\n1,Item A,100.50,Electronics\n2,Item B,250.75,Clothing"
	result, err := svc.Summarize(context.Background(), []byte(body))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalRows)
	assert.Equal(t, 2, result.Summary.ProcessedRows)
	assert.Equal(t, 351.25, result.Summary.TotalAmount)
	assert.Equal(t, 175.63, result.Summary.AverageAmount)
	assert.Equal(t, []string{"Clothing", "Electronics"}, result.Summary.UniqueCategories)
	assert.Equal(t, 2, result.Summary.CategoryCount)

	assert.Equal(t, []models.ProcessedItem{
		{ID: "1", Name: "Item A", Amount: 100.5, Category: "Electronics"},
		{ID: "2", Name: "Item B", Amount: 250.75, Category: "Clothing"},
	}, result.Items)

	assert.Equal(t, 2, metrics.processed)
	assert.Equal(t, 0, metrics.skipped)
	assert.Equal(t, []float64{351.25}, metrics.amounts)
}

func TestSummarize_ManyValidRows(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,name,amount,category\n")
	for i := 1; i <= 1000; i++ {
		fmt.Fprintf(&sb, "%d,Item %d,0.10,Cat%d\n", i, i, i%7)
	}

	result, err := summarize(t, sb.String())
	require.NoError(t, err)

	assert.Equal(t, 1000, result.Summary.TotalRows)
	assert.Equal(t, 1000, result.Summary.ProcessedRows)
	// 0.10 is summed exactly
	assert.Equal(t, 100.0, result.Summary.TotalAmount)
	assert.Equal(t, 0.1, result.Summary.AverageAmount)
	assert.Equal(t, 7, result.Summary.CategoryCount)
	assert.Len(t, result.Items, 1000)
}

func TestSummarize_SkipsInvalidRows(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := NewCSVSummaryService(metrics)

	body := strings.Join([]string{
		"id,name,amount,category",
		"1,Good,10,Food",
		"2,Bad,abc,Food",
		"3,Short",
		"4,Empty,,Toys",
		"5,Also good,5.5,Toys",
	}, "\n")

	result, err := svc.Summarize(context.Background(), []byte(body))
	require.NoError(t, err)

	assert.Equal(t, 5, result.Summary.TotalRows)
	assert.Equal(t, 2, result.Summary.ProcessedRows)
	assert.Less(t, result.Summary.ProcessedRows, result.Summary.TotalRows)
	assert.Equal(t, 15.5, result.Summary.TotalAmount)
	assert.Equal(t, 7.75, result.Summary.AverageAmount)
	assert.Equal(t, []string{"Food", "Toys"}, result.Summary.UniqueCategories)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "1", result.Items[0].ID)
	assert.Equal(t, "5", result.Items[1].ID)

	assert.Equal(t, 3, metrics.skipped)
}

func TestSummarize_HugeExponentsAreSkippedQuickly(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := NewCSVSummaryService(metrics)

	body := strings.Join([]string{
		"id,name,amount,category",
		"1,A,1.25,Food",
		"2,B,1e30000000,Food",
		"3,C,1e-30000000,Food",
		"4,D,1e400,Food",
		"5,E," + strings.Repeat("9", 100000) + ",Food",
	}, "\n")

	start := time.Now()
	result, err := svc.Summarize(context.Background(), []byte(body))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, 5, result.Summary.TotalRows)
	assert.Equal(t, 1, result.Summary.ProcessedRows)
	assert.Equal(t, 1.25, result.Summary.TotalAmount)
	assert.Equal(t, 4, metrics.skipped)
	assert.Equal(t, []float64{1.25}, metrics.amounts)
}

func TestSummarize_AllRowsInvalid(t *testing.T) {
	result, err := summarize(t, "id,name,amount,category\n1,A,x,Food\n")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.TotalRows)
	assert.Equal(t, 0, result.Summary.ProcessedRows)
	assert.Zero(t, result.Summary.TotalAmount)
	assert.Zero(t, result.Summary.AverageAmount)
	assert.NotNil(t, result.Summary.UniqueCategories)
	assert.Empty(t, result.Summary.UniqueCategories)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestSummarize_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty body", "", ErrNoCSVData},
		{"header only", "id,name,amount,category\n", ErrEmptyCSV},
		{"blank lines only", "\n\n", ErrEmptyCSV},
		{"bom only", "\xEF\xBB\xBF", ErrEmptyCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := summarize(t, tt.body)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsInputError(err))
		})
	}
}

func TestSummarize_MissingColumns(t *testing.T) {
	_, err := summarize(t, "id,name,category,id\n1,A,Food,9\n")

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"id", "name", "category"}, missing.Found)
	assert.Equal(t, "CSV must contain columns: id, name, amount, category", missing.Error())
	assert.True(t, IsInputError(err))
}

func TestSummarize_ParsingDetails(t *testing.T) {
	t.Run("byte order mark", func(t *testing.T) {
		result, err := summarize(t, "\xEF\xBB\xBFid,name,amount,category\n1,A,1,Food\n")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Summary.ProcessedRows)
	})

	t.Run("quoted fields and CRLF", func(t *testing.T) {
		body := "id,name,amount,category\r\n1,\"Widget, large\",\"1,5\",Tools\r\n2,\"Say \"\"hi\"\"\",2,Tools\r\n"
		result, err := summarize(t, body)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Summary.TotalRows)
		require.Len(t, result.Items, 1)
		assert.Equal(t, `Say "hi"`, result.Items[0].Name)
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		result, err := summarize(t, "category,note,amount,name,id\nFood,x,3,A,1\n")
		require.NoError(t, err)
		assert.Equal(t, models.ProcessedItem{ID: "1", Name: "A", Amount: 3, Category: "Food"}, result.Items[0])
	})

	t.Run("categories sort byte-wise", func(t *testing.T) {
		result, err := summarize(t, "id,name,amount,category\n1,a,1,beta\n2,b,1,Alpha\n3,c,1,alpha\n4,d,1,beta\n")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "alpha", "beta"}, result.Summary.UniqueCategories)
		assert.Equal(t, 3, result.Summary.CategoryCount)
	})
}

func TestSummarize_InvalidUTF8(t *testing.T) {
	_, err := summarize(t, "id,name,amount,category\n1,\xff,1,Food\n")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "offset 26")
	assert.False(t, IsInputError(err))
}
