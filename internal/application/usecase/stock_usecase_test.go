package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type stockFixtures struct {
	uc         *usecase.StockUseCase
	stock      *fakeStockRepo
	products   *fakeProductRepo
	warehouses *fakeWarehouseRepo
	commerces  *fakeCommerceRepo
	report     *fakeReportGenerator
	summary    *fakeSummaryInvalidator
}

func newStockFixtures() *stockFixtures {
	stock := newFakeStockRepo()
	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()
	commerces := &fakeCommerceRepo{}
	report := &fakeReportGenerator{}
	summary := &fakeSummaryInvalidator{}
	tx := &fakeTxRunner{stock: stock, products: products}
	return &stockFixtures{
		uc:         usecase.NewStockUseCase(stock, products, warehouses, commerces, tx, report, summary, testLogger()),
		stock:      stock,
		products:   products,
		warehouses: warehouses,
		commerces:  commerces,
		report:     report,
		summary:    summary,
	}
}

func (f *stockFixtures) seedProduct(t *testing.T, id string, available bool) {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{
		ID: id, SKU: "SKU-" + id, Barcode: "BC-" + id,
		Name: "Producto " + id, ShortName: "P-" + id,
		Available: available,
	}))
}

func (f *stockFixtures) seedWarehouse(t *testing.T, id, name string) {
	t.Helper()
	require.NoError(t, f.warehouses.Create(&entity.Warehouse{ID: id, Name: name}))
}

func (f *stockFixtures) seedStock(t *testing.T, productID, warehouseID string, qty int64) {
	t.Helper()
	require.NoError(t, f.stock.Upsert(&entity.WarehouseStock{
		ProductID: productID, WarehouseID: warehouseID,
		Quantity: qty, UpdatedAt: time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateStock_SumaTodasLasBodegas(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedStock(t, "p1", "b1", 7)
	f.seedStock(t, "p1", "b2", 5)
	f.seedStock(t, "p2", "b1", 100) // de otro producto, no suma

	resp, err := f.uc.AggregateStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Total)
}

// Producto sin filas de stock: el agregado es 0, no un error.
func TestAggregateStock_SinFilasEsCero(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)

	resp, err := f.uc.AggregateStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
}

func TestAggregateStock_ProductoInexistente(t *testing.T) {
	f := newStockFixtures()
	_, err := f.uc.AggregateStock(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_SinLineas(t *testing.T) {
	f := newStockFixtures()
	f.seedWarehouse(t, "b1", "Bodega Central")

	_, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{WarehouseID: "b1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_BodegaInexistenteRechazaElLote(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)

	_, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "fantasma",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La primera entrada de un par producto-bodega materializa la fila desde 0.
func TestAdjustStock_PrimerIngresoCreaLaFila(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedWarehouse(t, "b1", "Bodega Central")

	resp, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: 10}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Applied)
	assert.Equal(t, int64(10), resp.Results[0].Quantity)
	assert.Equal(t, int64(10), f.stock.quantity("p1", "b1"))
}

// Un delta que dejaría la cantidad bajo cero rechaza esa línea y deja la
// cantidad vigente intacta.
func TestAdjustStock_ResultadoNegativoRechazaLaLinea(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedWarehouse(t, "b1", "Bodega Central")
	f.seedStock(t, "p1", "b1", 3)

	resp, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: -5}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	line := resp.Results[0]
	assert.False(t, line.Applied)
	assert.NotEmpty(t, line.Reason)
	assert.Equal(t, int64(3), line.Quantity, "debe informar la cantidad vigente")
	assert.Equal(t, int64(3), f.stock.quantity("p1", "b1"), "la cantidad no debe cambiar")
}

// Las líneas son independientes: una rechazada no aborta a las demás.
func TestAdjustStock_ExitoParcialPorLinea(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedProduct(t, "p2", true)
	f.seedWarehouse(t, "b1", "Bodega Central")
	f.seedStock(t, "p1", "b1", 2)

	resp, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines: []dto.AdjustLine{
			{ProductID: "p1", Delta: -10},     // rechazada: quedaría en -8
			{ProductID: "p2", Delta: 4},       // aplicada
			{ProductID: "fantasma", Delta: 1}, // rechazada: producto inexistente
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.False(t, resp.Results[0].Applied)
	assert.True(t, resp.Results[1].Applied)
	assert.Equal(t, int64(4), resp.Results[1].Quantity)
	assert.False(t, resp.Results[2].Applied)

	assert.Equal(t, int64(2), f.stock.quantity("p1", "b1"))
	assert.Equal(t, int64(4), f.stock.quantity("p2", "b1"))
}

// Llegar exactamente a cero es válido; el límite es estricto bajo cero.
func TestAdjustStock_BajarACeroEsValido(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedWarehouse(t, "b1", "Bodega Central")
	f.seedStock(t, "p1", "b1", 5)

	resp, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: -5}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Results[0].Applied)
	assert.Equal(t, int64(0), resp.Results[0].Quantity)
}

// Un ajuste con al menos una línea aplicada descarta el resumen cacheado del
// dashboard; un lote con todas las líneas rechazadas no lo toca.
func TestAdjustStock_InvalidaResumenSoloSiAplico(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)
	f.seedWarehouse(t, "b1", "Bodega Central")

	_, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: -1}}, // rechazada
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.summary.calls)

	_, err = f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		WarehouseID: "b1",
		Lines:       []dto.AdjustLine{{ProductID: "p1", Delta: 6}}, // aplicada
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.summary.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnableEverywhere
// ──────────────────────────────────────────────────────────────────────────────

// Habilitar toca sólo la disponibilidad, nunca las cantidades.
func TestEnableEverywhere_NoTocaCantidades(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", false)
	f.seedStock(t, "p1", "b1", 9)

	resp, err := f.uc.EnableEverywhere(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(9), f.stock.quantity("p1", "b1"))
	assert.Equal(t, 1, f.summary.calls, "habilitar invalida el resumen")
}

func TestEnableEverywhere_YaDisponibleEsNoOp(t *testing.T) {
	f := newStockFixtures()
	f.seedProduct(t, "p1", true)

	resp, err := f.uc.EnableEverywhere(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 0, f.summary.calls, "el no-op no toca el caché")
}

func TestEnableEverywhere_ProductoInexistente(t *testing.T) {
	f := newStockFixtures()
	_, err := f.uc.EnableEverywhere(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockByWarehouse / export
// ──────────────────────────────────────────────────────────────────────────────

func TestStockByWarehouse_TotalizaUnidades(t *testing.T) {
	f := newStockFixtures()
	f.seedWarehouse(t, "b1", "Bodega Central")
	f.stock.listed = []entity.ProductStock{
		{Product: entity.Product{ID: "p1", SKU: "SKU-p1", Name: "Uno", Available: true}, CategoryName: "Bebidas", Quantity: 3},
		{Product: entity.Product{ID: "p2", SKU: "SKU-p2", Name: "Dos", Available: false}, Quantity: 4},
	}

	resp, err := f.uc.StockByWarehouse(context.Background(), "b1", false)
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.WarehouseID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(7), resp.TotalUnits)
	assert.Equal(t, "Bebidas", resp.Items[0].CategoryName)
}

func TestStockByWarehouse_BodegaInexistente(t *testing.T) {
	f := newStockFixtures()
	_, err := f.uc.StockByWarehouse(context.Background(), "fantasma", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sin bodega la consulta es el agregado global; no requiere bodega existente.
func TestStockByWarehouse_VacioEsAgregadoGlobal(t *testing.T) {
	f := newStockFixtures()
	f.stock.listed = []entity.ProductStock{
		{Product: entity.Product{ID: "p1", SKU: "SKU-p1", Name: "Uno", Available: true}, Quantity: 11},
	}

	resp, err := f.uc.StockByWarehouse(context.Background(), "", false)
	require.NoError(t, err)
	assert.Empty(t, resp.WarehouseID)
	assert.Equal(t, int64(11), resp.TotalUnits)
}

func TestReportPDF_UsaNombresDeComercioYBodega(t *testing.T) {
	f := newStockFixtures()
	f.seedWarehouse(t, "b1", "Bodega Central")
	require.NoError(t, f.commerces.Create(&entity.Commerce{ID: "c1", Name: "Minimarket Sol"}))

	pdf, err := f.uc.ReportPDF(context.Background(), "b1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Minimarket Sol", f.report.lastCommerce)
	assert.Equal(t, "Bodega Central", f.report.lastWarehouse)
}
