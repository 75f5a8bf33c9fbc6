package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. La imagen llega aparte
// (multipart) y se adjunta en segunda fase.
type CreateProductRequest struct {
	SKU         string           `json:"sku"`
	Barcode     string           `json:"barcode"`
	Name        string           `json:"name"`
	ShortName   string           `json:"short_name"`
	Description string           `json:"description"`
	CategoryID  string           `json:"category_id"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Available   *bool            `json:"available"` // nil → true
}

// ProductPatch entrada para actualizar un producto. Sólo los campos presentes
// se aplican; los timestamps no son parcheables por construcción.
type ProductPatch struct {
	SKU         *string          `json:"sku"`
	Barcode     *string          `json:"barcode"`
	Name        *string          `json:"name"`
	ShortName   *string          `json:"short_name"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id"` // "" quita la categoría
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Available   *bool            `json:"available"`
}

// ImageUpload imagen adjunta en create/update (multipart).
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	SKU         string           `json:"sku"`
	Barcode     string           `json:"barcode"`
	Name        string           `json:"name"`
	ShortName   string           `json:"short_name"`
	Description string           `json:"description"`
	CategoryID  string           `json:"category_id,omitempty"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Available   bool             `json:"available"`
	ImagePath   string           `json:"image_path,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateProductResult producto creado; Warning trae el detalle si la fase de
// imagen falló (el producto queda creado igual, sin imagen).
type CreateProductResult struct {
	Product *ProductResponse `json:"product"`
	Warning string           `json:"warning,omitempty"`
}

// DisableResult resultado de Disable: AlreadyDisabled distingue el no-op.
type DisableResult struct {
	Product         *ProductResponse `json:"product"`
	AlreadyDisabled bool             `json:"already_disabled"`
}

// ProductListRequest filtros y orden del listado.
type ProductListRequest struct {
	CategoryID    string `query:"categoria"`
	Search        string `query:"search"`
	OrderBy       string `query:"orden"`
	OnlyAvailable bool   `query:"solo_disponibles"`
	Page          PageRequest
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
