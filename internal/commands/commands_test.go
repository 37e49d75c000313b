package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcapp-api/internal/services"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSummarize_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("id,name,amount,category\n1,Item A,100.50,Electronics\n2,Item B,250.75,Clothing\n3,Bad,x,Food\n"), 0o644))

	stdout, stderr, err := runCLI(t, "", "summarize", path)
	require.NoError(t, err)

	var got struct {
		Status  string `json:"status"`
		Summary struct {
			TotalRows     int     `json:"total_rows"`
			ProcessedRows int     `json:"processed_rows"`
			TotalAmount   float64 `json:"total_amount"`
			AverageAmount float64 `json:"average_amount"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "success", got.Status)
	assert.Equal(t, 3, got.Summary.TotalRows)
	assert.Equal(t, 2, got.Summary.ProcessedRows)
	assert.Equal(t, 351.25, got.Summary.TotalAmount)
	assert.Equal(t, 175.63, got.Summary.AverageAmount)
	assert.Contains(t, stdout, "\n  \"summary\": {")
	assert.Contains(t, stderr, "skipped 1 invalid row(s)")
}

func TestSummarize_Stdin(t *testing.T) {
	stdout, _, err := runCLI(t, "id,name,amount,category\n1,A,2,Food\n", "summarize", "--compact")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, `{"status":"success","summary":{`))

	stdout, _, err = runCLI(t, "id,name,amount,category\n1,A,2,Food\n", "summarize", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"category_count": 1`)
}

func TestSummarize_Errors(t *testing.T) {
	_, _, err := runCLI(t, "", "summarize")
	assert.ErrorIs(t, err, services.ErrNoCSVData)

	_, _, err = runCLI(t, "id,name\n1,A\n", "summarize")
	var missing *services.MissingColumnsError
	assert.ErrorAs(t, err, &missing)

	_, _, err = runCLI(t, "", "summarize", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")

	_, _, err = runCLI(t, "", "summarize", "--log-level", "loud")
	assert.Error(t, err)
}
