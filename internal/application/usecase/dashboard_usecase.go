package usecase

import (
	"context"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// DashboardCache caché opcional del resumen. Una implementación nil
// deshabilita el caché y el resumen se calcula en cada consulta.
type DashboardCache interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummary, bool)
	SetSummary(ctx context.Context, summary *dto.DashboardSummary)
}

// DashboardUseCase resumen del estado del catálogo y las bodegas.
type DashboardUseCase struct {
	products   repository.ProductRepository
	stock      repository.StockRepository
	warehouses repository.WarehouseRepository
	cache      DashboardCache
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(
	products repository.ProductRepository,
	stock repository.StockRepository,
	warehouses repository.WarehouseRepository,
	cache DashboardCache,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:   products,
		stock:      stock,
		warehouses: warehouses,
		cache:      cache,
		log:        log.Module("dashboard"),
	}
}

// Summary calcula (o sirve desde caché) el resumen del dashboard.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.GetSummary(ctx); ok {
			return cached, nil
		}
	}

	total, err := uc.products.Count(repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	available, err := uc.products.Count(repository.ProductFilter{OnlyAvailable: true})
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouses.List()
	if err != nil {
		return nil, err
	}
	items, err := uc.stock.ListProductsWithStock("", false)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalProducts:     total,
		AvailableProducts: available,
		Warehouses:        len(warehouses),
	}
	for _, it := range items {
		summary.TotalUnits += it.Quantity
		if it.Quantity == 0 {
			summary.OutOfStock++
		}
	}

	if uc.cache != nil {
		uc.cache.SetSummary(ctx, summary)
	}
	return summary, nil
}
