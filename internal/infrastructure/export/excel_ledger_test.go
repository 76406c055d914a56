package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

func TestRenderLedger_FilasYTotal(t *testing.T) {
	d := decimal.RequireFromString
	moves := []entity.Movement{
		{ID: 1, Type: entity.MovementTypeIngreso, Amount: d("50000"), Description: "Venta de contado", Date: "2024-05-10 15:30:00"},
		{ID: 2, Type: entity.MovementTypeEgreso, Amount: d("15000"), Description: "Surtido harina", Date: "2024-05-10T20:00:00Z"},
		{ID: 3, Type: entity.MovementTypeIngreso, Amount: d("5000"), Description: "Abono a crédito venta #9", Date: "2024-05-11 08:00:00"},
	}

	out, err := NewExcelLedger().RenderLedger(context.Background(), moves, -5*time.Hour)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5, "cabecera + 3 movimientos + total")

	assert.Equal(t, "Fecha", rows[0][0])
	assert.Equal(t, "2024-05-10 10:30", rows[1][0])
	assert.Equal(t, "Egreso", rows[2][1])
	assert.Equal(t, "Abono a crédito", rows[3][1])

	raw, err := f.GetCellValue(sheetName, "D5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "40000", raw, "50000 - 15000 + 5000")
	raw, err = f.GetCellValue(sheetName, "D3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-15000", raw)
}

func TestRenderLedger_Vacio(t *testing.T) {
	out, err := NewExcelLedger().RenderLedger(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
