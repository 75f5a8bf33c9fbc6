package usecase

import (
	"context"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store, con repos atados
// a ella. Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ImageStore persiste imágenes de producto y devuelve la ruta relativa
// que se guarda en el catálogo.
type ImageStore interface {
	Save(productID, originalName string, data []byte) (string, error)
	Delete(relPath string) error
	// AbsPath resuelve la ruta absoluta de una ruta relativa guardada.
	AbsPath(relPath string) string
}

// SummaryInvalidator invalida el resumen cacheado del dashboard tras una
// mutación de catálogo o stock. Una implementación nil deshabilita el caché.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context)
}

// StockReportGenerator genera el informe de stock en PDF.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, commerceName, warehouseName string, items []entity.ProductStock) ([]byte, error)
}
