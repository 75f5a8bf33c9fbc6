package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Replican el contrato de los adaptadores
// Postgres: GetByID devuelve (nil, nil) si no existe, Get de stock materializa
// una fila con cantidad 0, etc.
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	products map[string]*entity.Product
	// createErr fuerza el fallo del INSERT aunque los pre-chequeos pasen
	// (simula el constraint UNIQUE disparando en una carrera).
	createErr error
	// imagePathErr fuerza el fallo de UpdateImagePath (fase 2 de imagen).
	imagePathErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, p.ID)
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateImagePath(id, imagePath string) error {
	if r.imagePathErr != nil {
		return r.imagePathErr
	}
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	p.ImagePath = imagePath
	return nil
}

func (r *fakeProductRepo) SetAvailable(id string, available bool) error {
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	p.Available = available
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) exists(excludeID string, match func(*entity.Product) bool) (bool, error) {
	for id, p := range r.products {
		if id == excludeID {
			continue
		}
		if match(p) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ExistsBySKU(sku, excludeID string) (bool, error) {
	return r.exists(excludeID, func(p *entity.Product) bool { return p.SKU == sku })
}

func (r *fakeProductRepo) ExistsByBarcode(barcode, excludeID string) (bool, error) {
	return r.exists(excludeID, func(p *entity.Product) bool { return p.Barcode == barcode })
}

func (r *fakeProductRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.exists(excludeID, func(p *entity.Product) bool { return p.Name == name })
}

func (r *fakeProductRepo) ExistsByShortName(shortName, excludeID string) (bool, error) {
	return r.exists(excludeID, func(p *entity.Product) bool { return p.ShortName == shortName })
}

func (r *fakeProductRepo) matches(p *entity.Product, f repository.ProductFilter) bool {
	if f.OnlyAvailable && !p.Available {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.SKU), s) &&
			!strings.Contains(strings.ToLower(p.Barcode), s) {
			return false
		}
	}
	return true
}

func (r *fakeProductRepo) Count(f repository.ProductFilter) (int, error) {
	n := 0
	for _, p := range r.products {
		if r.matches(p, f) {
			n++
		}
	}
	return n, nil
}

// List ignora orderBy y ordena por SKU para dar resultados deterministas.
func (r *fakeProductRepo) List(f repository.ProductFilter, orderBy string, limit, offset int) ([]*entity.Product, error) {
	var all []*entity.Product
	for _, p := range r.products {
		if r.matches(p, f) {
			clone := *p
			all = append(all, &clone)
		}
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].SKU < all[i].SKU {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// fakeStockRepo repositorio de stock en memoria, una fila por par
// producto-bodega igual que el esquema real.
type fakeStockRepo struct {
	rows map[string]*entity.WarehouseStock
	// listed es lo que devuelve ListProductsWithStock (vista de lectura).
	listed []entity.ProductStock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]*entity.WarehouseStock)}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error) {
	if row, ok := r.rows[stockKey(productID, warehouseID)]; ok {
		clone := *row
		return &clone, nil
	}
	return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeStockRepo) Upsert(stock *entity.WarehouseStock) error {
	clone := *stock
	r.rows[stockKey(stock.ProductID, stock.WarehouseID)] = &clone
	return nil
}

func (r *fakeStockRepo) SumByProduct(productID string) (int64, error) {
	var total int64
	for _, row := range r.rows {
		if row.ProductID == productID {
			total += row.Quantity
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ListProductsWithStock(warehouseID string, onlyAvailable bool) ([]entity.ProductStock, error) {
	return r.listed, nil
}

// quantity devuelve la cantidad vigente del par, 0 si no hay fila.
func (r *fakeStockRepo) quantity(productID, warehouseID string) int64 {
	if row, ok := r.rows[stockKey(productID, warehouseID)]; ok {
		return row.Quantity
	}
	return 0
}

// fakeCategoryRepo repositorio de categorías en memoria.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// fakeWarehouseRepo repositorio de bodegas en memoria.
type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	clone := *w
	r.warehouses[w.ID] = &clone
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Name == name {
			clone := *w
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	clone := *w
	r.warehouses[w.ID] = &clone
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.warehouses, id)
	return nil
}

// fakeCommerceRepo repositorio de comercios en memoria.
type fakeCommerceRepo struct {
	commerces []*entity.Commerce
}

func (r *fakeCommerceRepo) Create(c *entity.Commerce) error {
	clone := *c
	r.commerces = append(r.commerces, &clone)
	return nil
}

func (r *fakeCommerceRepo) GetByID(id string) (*entity.Commerce, error) {
	for _, c := range r.commerces {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCommerceRepo) GetByLegalName(legalName string) (*entity.Commerce, error) {
	for _, c := range r.commerces {
		if c.LegalName == legalName {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCommerceRepo) List() ([]*entity.Commerce, error) {
	return r.commerces, nil
}

func (r *fakeCommerceRepo) Update(c *entity.Commerce) error { return nil }

func (r *fakeCommerceRepo) Delete(id string) error { return nil }

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción.
// El commit/rollback real lo cubre el adaptador Postgres; acá interesa la
// lógica de los casos de uso.
type fakeTxRunner struct {
	stock    repository.StockRepository
	products repository.ProductRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.stock, t.products)
}

// fakeImageStore guarda rutas en memoria y registra los borrados.
type fakeImageStore struct {
	saveErr error
	saved   []string
	deleted []string
}

func (s *fakeImageStore) Save(productID, originalName string, data []byte) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	relPath := "productos/test/producto_" + productID + ".jpg"
	s.saved = append(s.saved, relPath)
	return relPath, nil
}

func (s *fakeImageStore) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	return nil
}

func (s *fakeImageStore) AbsPath(relPath string) string {
	return "/media/" + relPath
}

// fakeSummaryInvalidator cuenta las invalidaciones del resumen de dashboard.
type fakeSummaryInvalidator struct {
	calls int
}

func (f *fakeSummaryInvalidator) InvalidateSummary(ctx context.Context) {
	f.calls++
}

// fakeReportGenerator devuelve un PDF de mentira.
type fakeReportGenerator struct {
	lastCommerce  string
	lastWarehouse string
}

func (g *fakeReportGenerator) GenerateStockReport(ctx context.Context, commerceName, warehouseName string, items []entity.ProductStock) ([]byte, error) {
	g.lastCommerce = commerceName
	g.lastWarehouse = warehouseName
	return []byte("%PDF-1.7 test"), nil
}
