package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// ProductFilter filtros de listado de productos.
// Search aplica búsqueda parcial case-insensitive sobre name, sku y barcode.
type ProductFilter struct {
	CategoryID    string
	Search        string
	OnlyAvailable bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los chequeos Exists* son exact-match y con auto-exclusión opcional
// (excludeID vacío en creación).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateImagePath(id, imagePath string) error
	SetAvailable(id string, available bool) error
	Delete(id string) error

	ExistsBySKU(sku, excludeID string) (bool, error)
	ExistsByBarcode(barcode, excludeID string) (bool, error)
	ExistsByName(name, excludeID string) (bool, error)
	ExistsByShortName(shortName, excludeID string) (bool, error)

	Count(filter ProductFilter) (int, error)
	List(filter ProductFilter, orderBy string, limit, offset int) ([]*entity.Product, error)
}
