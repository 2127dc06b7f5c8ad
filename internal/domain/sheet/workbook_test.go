package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheetName := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheetName, cell, &row))
	}

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"FHR_ID", "DEL", "Hub Name"},
		{"FHR1", 12, "Koramangala"},
		{"FHR2", 7, "Indiranagar"},
	})

	rows, err := ReadWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "FHR1", TextField(rows[0], "FHRID"))
	assert.Equal(t, 12.0, NumberField(rows[0], "DEL"))
	assert.Equal(t, "Indiranagar", TextField(rows[1], "HubName"))
}

func TestReadWorkbookShortRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"FHR_ID", "DEL", "PICK"},
		{"FHR1"},
	})

	rows, err := ReadWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "FHR1", TextField(rows[0], "FHR_ID"))
	assert.Equal(t, 0.0, NumberField(rows[0], "DEL"))
}

func TestReadWorkbookHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"FHR_ID", "DEL"}})

	rows, err := ReadWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadWorkbookNotAnArchive(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewBufferString("definitely not xlsx"))
	assert.Error(t, err)
}
