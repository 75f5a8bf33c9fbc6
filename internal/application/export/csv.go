// Package export serializa el stock a CSV para planillas. El archivo lleva
// BOM UTF-8 al inicio para que Excel detecte la codificación.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StockCSV genera el CSV del stock anotado por producto.
func StockCSV(items []entity.ProductStock) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	header := []string{"sku", "codigo_barras", "producto", "categoria", "disponible", "cantidad"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	for _, it := range items {
		disponible := "si"
		if !it.Product.Available {
			disponible = "no"
		}
		record := []string{
			it.Product.SKU,
			it.Product.Barcode,
			it.Product.Name,
			it.CategoryName,
			disponible,
			strconv.FormatInt(it.Quantity, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}
