package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// Campos de orden permitidos en el listado y su expresión SQL.
// Cualquier otro valor es ErrInvalidArgument, no un fallback silencioso.
var productOrderWhitelist = map[string]string{
	"name":       "name",
	"sku":        "sku",
	"barcode":    "barcode",
	"short_name": "short_name",
	"sale_price": "sale_price",
	"created_at": "created_at",
}

// ProductUseCase casos de uso del catálogo de productos.
//
// La unicidad cuádruple (sku, barcode, name, short_name) se pre-chequea para
// dar mensajes claros, pero la fuente de verdad son los constraints UNIQUE:
// una carrera entre el chequeo y el INSERT termina igual en ErrDuplicate.
type ProductUseCase struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	images       ImageStore
	tx           TxRunner
	summary      SummaryInvalidator
	maxImageSize int64
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso. summary puede ser nil (sin
// caché de dashboard); maxImageSize en bytes, 0 = sin tope.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	images ImageStore,
	tx TxRunner,
	summary SummaryInvalidator,
	maxImageSize int64,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:     products,
		categories:   categories,
		images:       images,
		tx:           tx,
		summary:      summary,
		maxImageSize: maxImageSize,
		log:          log.Module("productos"),
	}
}

// Create crea un producto. La imagen se adjunta en segunda fase: si falla,
// el producto queda creado sin imagen y la respuesta lo advierte (no rollback).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, image *dto.ImageUpload) (*dto.CreateProductResult, error) {
	if err := validateRequiredFields(in); err != nil {
		return nil, err
	}
	if in.SalePrice != nil && in.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
	}
	if image != nil {
		if err := validateImage(image, uc.maxImageSize); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != "" {
		cat, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("%w: la categoría indicada no existe", domain.ErrInvalidInput)
		}
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         strings.TrimSpace(in.SKU),
		Barcode:     strings.TrimSpace(in.Barcode),
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		ShortName:   strings.TrimSpace(in.ShortName),
		Description: in.Description,
		SalePrice:   in.SalePrice,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Fase 1: pre-chequeos de unicidad + INSERT en una misma transacción.
	err := uc.tx.Run(ctx, func(_ repository.StockRepository, products repository.ProductRepository) error {
		if err := uc.checkUniqueness(products, product, ""); err != nil {
			return err
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateSummary(ctx)

	result := &dto.CreateProductResult{Product: toProductResponse(product)}

	// Fase 2: attach de imagen, fuera de la transacción. El producto ya
	// existe; un fallo aquí degrada a éxito-sin-imagen.
	if image != nil {
		relPath, err := uc.images.Save(product.ID, image.Filename, image.Data)
		if err == nil {
			err = uc.products.UpdateImagePath(product.ID, relPath)
			if err != nil {
				_ = uc.images.Delete(relPath)
			}
		}
		if err != nil {
			uc.log.Warn().Err(err).Str("product_id", product.ID).
				Msg("producto creado pero la imagen no pudo adjuntarse")
			result.Warning = "el producto fue creado pero la imagen no pudo guardarse"
		} else {
			product.ImagePath = relPath
			result.Product = toProductResponse(product)
		}
	}

	return result, nil
}

// GetByID obtiene un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// Update aplica un patch tipado. La unicidad se re-valida sólo para los
// campos que efectivamente cambian, excluyendo al propio producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, patch dto.ProductPatch, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	if image != nil {
		if err := validateImage(image, uc.maxImageSize); err != nil {
			return nil, err
		}
	}
	if patch.SalePrice != nil && patch.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
	}
	if patch.CategoryID != nil && *patch.CategoryID != "" {
		cat, err := uc.categories.GetByID(*patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("%w: la categoría indicada no existe", domain.ErrInvalidInput)
		}
	}

	var updated *entity.Product
	err := uc.tx.Run(ctx, func(_ repository.StockRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}

		applyPatch(product, patch)
		if err := uc.checkUniqueness(products, product, product.ID); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateSummary(ctx)

	if image != nil {
		relPath, err := uc.images.Save(updated.ID, image.Filename, image.Data)
		if err == nil {
			err = uc.products.UpdateImagePath(updated.ID, relPath)
		}
		if err != nil {
			uc.log.Warn().Err(err).Str("product_id", updated.ID).
				Msg("producto actualizado pero la imagen no pudo adjuntarse")
		} else {
			updated.ImagePath = relPath
		}
	}

	return toProductResponse(updated), nil
}

// Disable marca el producto como no disponible. Es idempotente: deshabilitar
// uno ya deshabilitado es un no-op distinguible, nunca un error.
func (uc *ProductUseCase) Disable(ctx context.Context, id string) (*dto.DisableResult, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if !product.Available {
		return &dto.DisableResult{Product: toProductResponse(product), AlreadyDisabled: true}, nil
	}
	if err := uc.products.SetAvailable(id, false); err != nil {
		return nil, err
	}
	uc.invalidateSummary(ctx)
	product.Available = false
	return &dto.DisableResult{Product: toProductResponse(product)}, nil
}

// Delete elimina el producto. La imagen se borra primero (best-effort, el
// fallo sólo se loggea); referencias de stock vivas → error referencial.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if product.ImagePath != "" {
		if err := uc.images.Delete(product.ImagePath); err != nil {
			uc.log.Warn().Err(err).Str("product_id", id).
				Msg("no se pudo eliminar la imagen del producto")
		}
	}
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	uc.invalidateSummary(ctx)
	return nil
}

// ImagePath resuelve la ruta absoluta de la imagen del producto para
// servirla. ErrNotFound si el producto no existe o no tiene imagen.
func (uc *ProductUseCase) ImagePath(ctx context.Context, id string) (string, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if product.ImagePath == "" {
		return "", fmt.Errorf("%w: el producto %s no tiene imagen", domain.ErrNotFound, id)
	}
	return uc.images.AbsPath(product.ImagePath), nil
}

func (uc *ProductUseCase) invalidateSummary(ctx context.Context) {
	if uc.summary != nil {
		uc.summary.InvalidateSummary(ctx)
	}
}

// List lista productos con filtros, orden validado y clamping indulgente de
// página: fuera de rango no es error, se ajusta a la primera o última.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	orderBy := "name"
	if in.OrderBy != "" {
		col, ok := productOrderWhitelist[strings.TrimPrefix(in.OrderBy, "-")]
		if !ok {
			return nil, fmt.Errorf("%w: orden no soportado: %s", domain.ErrInvalidArgument, in.OrderBy)
		}
		orderBy = col
		if strings.HasPrefix(in.OrderBy, "-") {
			orderBy += " DESC"
		}
	}

	filter := repository.ProductFilter{
		CategoryID:    in.CategoryID,
		Search:        in.Search,
		OnlyAvailable: in.OnlyAvailable,
	}
	total, err := uc.products.Count(filter)
	if err != nil {
		return nil, err
	}

	in.Page.Normalize()
	pages := int(math.Ceil(float64(total) / float64(in.Page.Items)))
	if pages < 1 {
		pages = 1
	}
	if in.Page.Page > pages {
		in.Page.Page = pages
	}
	offset := (in.Page.Page - 1) * in.Page.Items

	list, err := uc.products.List(filter, orderBy, in.Page.Items, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page: dto.PageResponse{
			Page:  in.Page.Page,
			Pages: pages,
			Items: in.Page.Items,
			Total: total,
		},
	}, nil
}

// checkUniqueness verifica los cuatro campos únicos con auto-exclusión
// (excludeID vacío en creación).
func (uc *ProductUseCase) checkUniqueness(products repository.ProductRepository, p *entity.Product, excludeID string) error {
	checks := []struct {
		label  string
		value  string
		exists func(value, excludeID string) (bool, error)
	}{
		{"sku", p.SKU, products.ExistsBySKU},
		{"barcode", p.Barcode, products.ExistsByBarcode},
		{"name", p.Name, products.ExistsByName},
		{"short_name", p.ShortName, products.ExistsByShortName},
	}
	for _, c := range checks {
		taken, err := c.exists(c.value, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: ya existe un producto con ese %s", domain.ErrDuplicate, c.label)
		}
	}
	return nil
}

func validateRequiredFields(in dto.CreateProductRequest) error {
	required := map[string]string{
		"sku":         in.SKU,
		"barcode":     in.Barcode,
		"name":        in.Name,
		"short_name":  in.ShortName,
		"description": in.Description,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: el campo %s es requerido", domain.ErrInvalidInput, field)
		}
	}
	return nil
}

// validateImage rechaza el adjunto antes de tocar el catálogo: content-type,
// vacío y tope de tamaño. La extensión la refuerza además el image store.
func validateImage(image *dto.ImageUpload, maxSize int64) error {
	if !strings.HasPrefix(image.ContentType, "image/") {
		return fmt.Errorf("%w: el archivo adjunto no es una imagen (%s)", domain.ErrInvalidInput, image.ContentType)
	}
	if len(image.Data) == 0 {
		return fmt.Errorf("%w: la imagen está vacía", domain.ErrInvalidInput)
	}
	if maxSize > 0 && int64(len(image.Data)) > maxSize {
		return fmt.Errorf("%w: la imagen supera el tamaño máximo (%d bytes)", domain.ErrInvalidInput, maxSize)
	}
	return nil
}

func applyPatch(p *entity.Product, patch dto.ProductPatch) {
	if patch.SKU != nil {
		p.SKU = strings.TrimSpace(*patch.SKU)
	}
	if patch.Barcode != nil {
		p.Barcode = strings.TrimSpace(*patch.Barcode)
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ShortName != nil {
		p.ShortName = strings.TrimSpace(*patch.ShortName)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.SalePrice != nil {
		p.SalePrice = patch.SalePrice
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Name:        p.Name,
		ShortName:   p.ShortName,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SalePrice:   p.SalePrice,
		Available:   p.Available,
		ImagePath:   p.ImagePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
