package export

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelWorkbook(t *testing.T) {
	rows := []BillRow{
		{Serial: 1, Biller: "Ramesh Kumar", Date: "2024-01-15", Total: 896.50},
		{Serial: 2, Biller: "Suresh Singh", Date: "2024-01-16", Total: 1250},
	}

	data, err := ExcelWorkbook(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}

	headers := []string{"Serial", "Biller", "Date", "Total"}
	for i, want := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		got, err := f.GetCellValue("Bills", cell, raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	serial, err := f.GetCellValue("Bills", "A2", raw)
	require.NoError(t, err)
	assert.Equal(t, "1", serial)

	biller, err := f.GetCellValue("Bills", "B3", raw)
	require.NoError(t, err)
	assert.Equal(t, "Suresh Singh", biller)

	total, err := f.GetCellValue("Bills", "D2", raw)
	require.NoError(t, err)
	assert.Equal(t, "896.5", total)
}

func TestExcelWorkbook_Empty(t *testing.T) {
	data, err := ExcelWorkbook(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Bills", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Serial", got)
}
