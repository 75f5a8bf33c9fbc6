package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/export"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// StockUseCase casos de uso de stock por bodega.
//
// El stock y la disponibilidad son señales independientes: un producto puede
// estar disponible con stock cero y viceversa. La cantidad nunca baja de
// cero; una línea de ajuste que lo intente se rechaza sola, sin afectar a
// las demás líneas del lote.
type StockUseCase struct {
	stock      repository.StockRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	commerces  repository.CommerceRepository
	tx         TxRunner
	report     StockReportGenerator
	summary    SummaryInvalidator
	log        *logger.Logger
}

// NewStockUseCase construye el caso de uso. summary puede ser nil (sin
// caché de dashboard).
func NewStockUseCase(
	stock repository.StockRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	commerces repository.CommerceRepository,
	tx TxRunner,
	report StockReportGenerator,
	summary SummaryInvalidator,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		stock:      stock,
		products:   products,
		warehouses: warehouses,
		commerces:  commerces,
		tx:         tx,
		report:     report,
		summary:    summary,
		log:        log.Module("stock"),
	}
}

// AggregateStock suma el stock del producto en todas las bodegas (0 sin filas).
func (uc *StockUseCase) AggregateStock(ctx context.Context, productID string) (*dto.AggregateStockResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	total, err := uc.stock.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.AggregateStockResponse{ProductID: productID, Total: total}, nil
}

// StockByWarehouse lista los productos con su cantidad en la bodega indicada
// (0 si el par no tiene fila) o el total agregado si warehouseID es vacío.
func (uc *StockUseCase) StockByWarehouse(ctx context.Context, warehouseID string, onlyAvailable bool) (*dto.StockListResponse, error) {
	if warehouseID != "" {
		if err := uc.requireWarehouse(warehouseID); err != nil {
			return nil, err
		}
	}
	items, err := uc.stock.ListProductsWithStock(warehouseID, onlyAvailable)
	if err != nil {
		return nil, err
	}

	resp := &dto.StockListResponse{
		WarehouseID: warehouseID,
		Items:       make([]dto.StockItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.StockItemResponse{
			ProductID:    it.Product.ID,
			SKU:          it.Product.SKU,
			Name:         it.Product.Name,
			CategoryName: it.CategoryName,
			Available:    it.Product.Available,
			Quantity:     it.Quantity,
		})
		resp.TotalUnits += it.Quantity
	}
	return resp, nil
}

// AdjustStock aplica un lote de ajustes sobre una bodega. El lote completo se
// rechaza sólo si la bodega no existe; cada línea corre en su propia
// transacción con bloqueo de fila, y un resultado negativo rechaza esa línea
// dejando la cantidad intacta, sin abortar a las hermanas.
func (uc *StockUseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: el ajuste no tiene líneas", domain.ErrInvalidInput)
	}
	if err := uc.requireWarehouse(in.WarehouseID); err != nil {
		return nil, err
	}

	resp := &dto.AdjustStockResponse{
		WarehouseID: in.WarehouseID,
		Results:     make([]dto.AdjustLineResult, 0, len(in.Lines)),
		AppliedAt:   time.Now(),
	}
	applied := false
	for _, line := range in.Lines {
		result := uc.adjustLine(ctx, in.WarehouseID, line)
		applied = applied || result.Applied
		resp.Results = append(resp.Results, result)
	}
	if applied {
		uc.invalidateSummary(ctx)
	}
	return resp, nil
}

// adjustLine aplica una línea en su propia transacción. La fila del par
// (producto, bodega) se crea lazy con cantidad 0 en el primer ajuste.
func (uc *StockUseCase) adjustLine(ctx context.Context, warehouseID string, line dto.AdjustLine) dto.AdjustLineResult {
	result := dto.AdjustLineResult{ProductID: line.ProductID}

	err := uc.tx.Run(ctx, func(stock repository.StockRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(line.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
		}

		row, err := stock.GetForUpdate(line.ProductID, warehouseID)
		if err != nil {
			return err
		}
		next := row.Quantity + line.Delta
		if next < 0 {
			result.Quantity = row.Quantity
			return fmt.Errorf("%w: el ajuste dejaría el stock en %d", domain.ErrNegativeStock, next)
		}

		row.Quantity = next
		row.UpdatedAt = time.Now()
		if err := stock.Upsert(row); err != nil {
			return err
		}
		result.Quantity = next
		return nil
	})
	if err != nil {
		result.Applied = false
		result.Reason = err.Error()
		uc.log.Debug().Str("product_id", line.ProductID).Str("warehouse_id", warehouseID).
			Int64("delta", line.Delta).Err(err).Msg("línea de ajuste rechazada")
		return result
	}

	result.Applied = true
	return result
}

// EnableEverywhere marca el producto como disponible sin tocar cantidades.
func (uc *StockUseCase) EnableEverywhere(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	if !product.Available {
		if err := uc.products.SetAvailable(productID, true); err != nil {
			return nil, err
		}
		product.Available = true
		uc.invalidateSummary(ctx)
	}
	return toProductResponse(product), nil
}

// ExportCSV exporta el stock (total o por bodega) como CSV UTF-8 con BOM.
func (uc *StockUseCase) ExportCSV(ctx context.Context, warehouseID string) ([]byte, error) {
	if warehouseID != "" {
		if err := uc.requireWarehouse(warehouseID); err != nil {
			return nil, err
		}
	}
	items, err := uc.stock.ListProductsWithStock(warehouseID, false)
	if err != nil {
		return nil, err
	}
	return export.StockCSV(items)
}

// ReportPDF genera el informe de stock en PDF.
func (uc *StockUseCase) ReportPDF(ctx context.Context, warehouseID string) ([]byte, error) {
	commerceName := "Comercio"
	if commerces, err := uc.commerces.List(); err == nil && len(commerces) > 0 {
		commerceName = commerces[0].Name
	}

	warehouseName := ""
	if warehouseID != "" {
		wh, err := uc.warehouses.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, warehouseID)
		}
		warehouseName = wh.Name
	}

	items, err := uc.stock.ListProductsWithStock(warehouseID, false)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, commerceName, warehouseName, items)
}

func (uc *StockUseCase) invalidateSummary(ctx context.Context) {
	if uc.summary != nil {
		uc.summary.InvalidateSummary(ctx)
	}
}

func (uc *StockUseCase) requireWarehouse(id string) error {
	if id == "" {
		return fmt.Errorf("%w: bodega requerida", domain.ErrInvalidInput)
	}
	wh, err := uc.warehouses.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return nil
}
