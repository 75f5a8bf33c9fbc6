package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/export"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
)

func TestStockCSV_EmpiezaConBOM(t *testing.T) {
	out, err := export.StockCSV(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "el CSV debe llevar BOM UTF-8 para Excel")
}

func TestStockCSV_EncabezadoYFilas(t *testing.T) {
	items := []entity.ProductStock{
		{
			Product:      entity.Product{SKU: "SKU-1", Barcode: "780001", Name: "Café molido, 250 g", Available: true},
			CategoryName: "Abarrotes",
			Quantity:     12,
		},
		{
			Product:  entity.Product{SKU: "SKU-2", Barcode: "780002", Name: "Té verde", Available: false},
			Quantity: 0,
		},
	}

	out, err := export.StockCSV(items)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll() // sin el BOM
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"sku", "codigo_barras", "producto", "categoria", "disponible", "cantidad"}, records[0])
	// La coma dentro del nombre queda en un solo campo (quoting CSV).
	assert.Equal(t, []string{"SKU-1", "780001", "Café molido, 250 g", "Abarrotes", "si", "12"}, records[1])
	assert.Equal(t, []string{"SKU-2", "780002", "Té verde", "", "no", "0"}, records[2])
}
