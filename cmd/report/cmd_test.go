package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `transID,payCardBank,payCardSex,corridorName,tapInTime,tapOutTime,tapInStopsLat,tapInStopsLon,tapOutStopsLat,tapOutStopsLon
T1,dki,Male,CorridorA,2023-04-03 10:00:00,2023-04-03 10:40:00,-6.2,106.8,-6.3,106.9
T2,emoney,Female,CorridorA,2023-04-03 10:05:00,2023-04-03 10:45:00,-6.2,106.8,-6.3,106.9
T3,dki,Male,CorridorB,2023-04-04 11:00:00,,,,-6.3,106.9
`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "taps.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o644))
	t.Setenv("DATASET_SOURCE", "csv")
	t.Setenv("DATASET_PATH", csvPath)

	day, corridor, banks = "", "ALL", nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(dir, "missing.env"), "--log-level", "error"))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSummaryCommand(t *testing.T) {
	out := runCLI(t, "summary", "--day", "Monday")

	assert.Contains(t, out, "Transactions: 2")
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "CorridorA")
	assert.Contains(t, out, "e-Money")
	assert.Contains(t, out, "Key findings for Monday")
}

func TestSummaryCommand_Empty(t *testing.T) {
	out := runCLI(t, "summary", "--day", "Sunday")

	assert.Contains(t, out, "No transactions match the selected filters.")
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	out := runCLI(t, "export", "--day", "Tuesday", "--out", path)

	assert.Contains(t, out, "1 transactions")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Routes")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "CorridorB", "1"}, rows[1])
}
