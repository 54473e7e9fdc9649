package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("students.xlsx"))
	assert.True(t, AllowedExtension("STUDENTS.XLS"))
	assert.False(t, AllowedExtension("students.csv"))
	assert.False(t, AllowedExtension("students"))
}

func TestParseRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"name", "symbolNo", "grade"},
		{"Sita Thapa", "70012345678", 11},
		{"Hari Bahadur", "70012345679", 12},
	})

	rows, err := ParseRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Sita Thapa", rows[0]["name"])
	// Large numeric IDs must keep every digit
	assert.Equal(t, "70012345678", rows[0]["symbolNo"])
	assert.Equal(t, "12", rows[1]["grade"])
}

func TestParseRows_SkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"name", "symbolNo"},
		{"Sita Thapa", "S100"},
		{"", ""},
		{"Hari Bahadur", "S101"},
	})

	rows, err := ParseRows(buf)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParseRows_HeaderOnlyWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"name", "symbolNo"},
	})

	_, err := ParseRows(buf)
	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestParseRows_NotAWorkbook(t *testing.T) {
	_, err := ParseRows(bytes.NewBufferString("definitely not a zip"))
	assert.Error(t, err)
}

func TestWriteSheetRoundTrip(t *testing.T) {
	f, err := WriteSheet("Students", []string{"Name", "Symbol No"}, [][]interface{}{
		{"Sita Thapa", "S100"},
		{"Hari Bahadur", "S101"},
	})
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "S101", rows[1]["Symbol No"])
}
