package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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

const testMaxImageSize = 2 * 1024 * 1024

type productFixtures struct {
	uc         *usecase.ProductUseCase
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	images     *fakeImageStore
	summary    *fakeSummaryInvalidator
}

func newProductFixtures() *productFixtures {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	images := &fakeImageStore{}
	summary := &fakeSummaryInvalidator{}
	tx := &fakeTxRunner{stock: newFakeStockRepo(), products: products}
	return &productFixtures{
		uc:         usecase.NewProductUseCase(products, categories, images, tx, summary, testMaxImageSize, testLogger()),
		products:   products,
		categories: categories,
		images:     images,
		summary:    summary,
	}
}

func validCreateRequest(suffix string) dto.CreateProductRequest {
	price := decimal.NewFromFloat(1990)
	return dto.CreateProductRequest{
		SKU:         "SKU-" + suffix,
		Barcode:     "780000000" + suffix,
		Name:        "Producto " + suffix,
		ShortName:   "Prod " + suffix,
		Description: "descripción de prueba",
		SalePrice:   &price,
	}
}

func seedProduct(t *testing.T, f *productFixtures, suffix string) *dto.ProductResponse {
	t.Helper()
	res, err := f.uc.Create(context.Background(), validCreateRequest(suffix), nil)
	require.NoError(t, err)
	require.Empty(t, res.Warning)
	return res.Product
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CampoRequeridoVacio(t *testing.T) {
	f := newProductFixtures()
	in := validCreateRequest("001")
	in.ShortName = "   " // sólo espacios cuenta como vacío

	_, err := f.uc.Create(context.Background(), in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	f := newProductFixtures()
	in := validCreateRequest("001")
	negative := decimal.NewFromInt(-100)
	in.SalePrice = &negative

	_, err := f.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_DisponiblePorDefecto(t *testing.T) {
	f := newProductFixtures()
	in := validCreateRequest("001")
	in.Available = nil // omitido → disponible

	res, err := f.uc.Create(context.Background(), in, nil)
	require.NoError(t, err)
	assert.True(t, res.Product.Available)
	assert.NotEmpty(t, res.Product.ID)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")

	in := validCreateRequest("002")
	in.SKU = "SKU-001" // choca con el primero

	_, err := f.uc.Create(context.Background(), in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "sku")
}

func TestProductCreate_NombreCortoDuplicado(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")

	in := validCreateRequest("002")
	in.ShortName = "Prod 001"

	_, err := f.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El pre-chequeo puede pasar y aun así el INSERT violar el constraint UNIQUE
// (carrera con otra petición). El error del repo debe salir tal cual.
func TestProductCreate_ConstraintDisparaTrasPrecheck(t *testing.T) {
	f := newProductFixtures()
	f.products.createErr = domain.ErrDuplicate

	_, err := f.uc.Create(context.Background(), validCreateRequest("001"), nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	f := newProductFixtures()
	in := validCreateRequest("001")
	in.CategoryID = "no-existe"

	_, err := f.uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ConImagen(t *testing.T) {
	f := newProductFixtures()
	image := &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8}}

	res, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.NotEmpty(t, res.Product.ImagePath)
	assert.Len(t, f.images.saved, 1)
}

func TestProductCreate_AdjuntoNoEsImagen(t *testing.T) {
	f := newProductFixtures()
	image := &dto.ImageUpload{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")}

	_, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una imagen sobre el tope de tamaño es error de validación en fase 1:
// el producto NO se crea (distinto del fallo de persistencia en fase 2,
// que degrada a éxito con advertencia).
func TestProductCreate_ImagenSobreElTopeRechazaLaCreacion(t *testing.T) {
	f := newProductFixtures()
	image := &dto.ImageUpload{
		Filename:    "foto.jpg",
		ContentType: "image/jpeg",
		Data:        make([]byte, testMaxImageSize+1),
	}

	_, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.products.products, "el producto no debe persistirse")
	assert.Empty(t, f.images.saved, "la imagen no debe llegar al store")
}

func TestProductUpdate_ImagenSobreElTope(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	image := &dto.ImageUpload{
		Filename:    "foto.png",
		ContentType: "image/png",
		Data:        make([]byte, testMaxImageSize+1),
	}
	_, err := f.uc.Update(context.Background(), created.ID, dto.ProductPatch{}, image)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Fase 2 degradada: si la imagen no se puede guardar el producto queda creado
// igual, con advertencia y sin ruta de imagen.
func TestProductCreate_FalloDeImagenNoRevierteElProducto(t *testing.T) {
	f := newProductFixtures()
	f.images.saveErr = assert.AnError
	image := &dto.ImageUpload{Filename: "foto.png", ContentType: "image/png", Data: []byte{0x89}}

	res, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)
	assert.Empty(t, res.Product.ImagePath)

	// El producto existe en el repositorio pese al fallo de la imagen.
	stored, err := f.products.GetByID(res.Product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.ImagePath)
}

// Si la imagen se guardó en disco pero la ruta no se pudo persistir, el
// archivo huérfano se elimina.
func TestProductCreate_ImagenHuerfanaSeElimina(t *testing.T) {
	f := newProductFixtures()
	f.products.imagePathErr = assert.AnError
	image := &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{0xFF}}

	res, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)
	require.Len(t, f.images.saved, 1)
	assert.Equal(t, f.images.saved, f.images.deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_PatchParcial(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	newPrice := decimal.NewFromFloat(2490)
	updated, err := f.uc.Update(context.Background(), created.ID, dto.ProductPatch{
		Name:      strPtr("Producto renombrado"),
		SalePrice: &newPrice,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Producto renombrado", updated.Name)
	assert.True(t, newPrice.Equal(*updated.SalePrice))
	// Los campos no parcheados se conservan.
	assert.Equal(t, created.SKU, updated.SKU)
	assert.Equal(t, created.ShortName, updated.ShortName)
}

// Los timestamps no son parcheables: CreatedAt se conserva y UpdatedAt lo
// fija el caso de uso, no el cliente.
func TestProductUpdate_TimestampsNoParcheables(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	before := time.Now()
	updated, err := f.uc.Update(context.Background(), created.ID, dto.ProductPatch{
		Description: strPtr("otra descripción"),
	}, nil)
	require.NoError(t, err)

	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "CreatedAt no debe cambiar")
	assert.False(t, updated.UpdatedAt.Before(before), "UpdatedAt lo fija el servidor")
}

func TestProductUpdate_UnicidadExcluyeAlPropio(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	// Re-enviar los mismos valores no es conflicto consigo mismo.
	updated, err := f.uc.Update(context.Background(), created.ID, dto.ProductPatch{
		SKU: strPtr(created.SKU),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, created.SKU, updated.SKU)
}

func TestProductUpdate_ConflictoConOtroProducto(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")
	second := seedProduct(t, f, "002")

	_, err := f.uc.Update(context.Background(), second.ID, dto.ProductPatch{
		Barcode: strPtr("780000000001"),
	}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_QuitarCategoria(t *testing.T) {
	f := newProductFixtures()
	require.NoError(t, f.categories.Create(&entity.Category{ID: "cat-1", Name: "Bebidas"}))

	in := validCreateRequest("001")
	in.CategoryID = "cat-1"
	res, err := f.uc.Create(context.Background(), in, nil)
	require.NoError(t, err)

	updated, err := f.uc.Update(context.Background(), res.Product.ID, dto.ProductPatch{
		CategoryID: strPtr(""), // cadena vacía quita la categoría
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.CategoryID)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	f := newProductFixtures()
	_, err := f.uc.Update(context.Background(), "fantasma", dto.ProductPatch{Name: strPtr("x")}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Disable / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDisable_Idempotente(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	first, err := f.uc.Disable(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyDisabled)
	assert.False(t, first.Product.Available)

	// Segunda deshabilitación: no-op distinguible, nunca error.
	second, err := f.uc.Disable(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyDisabled)
	assert.False(t, second.Product.Available)
}

func TestProductDisable_NoExiste(t *testing.T) {
	f := newProductFixtures()
	_, err := f.uc.Disable(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_BorraLaImagenPrimero(t *testing.T) {
	f := newProductFixtures()
	image := &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{0xFF}}
	res, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), res.Product.ID))
	assert.Len(t, f.images.deleted, 1)

	gone, err := f.products.GetByID(res.Product.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_OrdenNoSoportado(t *testing.T) {
	f := newProductFixtures()
	_, err := f.uc.List(context.Background(), dto.ProductListRequest{OrderBy: "drop table"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestProductList_OrdenDescendenteConPrefijo(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")

	// El prefijo "-" invierte un campo de la whitelist; no debe fallar.
	resp, err := f.uc.List(context.Background(), dto.ProductListRequest{OrderBy: "-sale_price"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page.Total)
}

func TestProductList_PaginaFueraDeRangoSeAjusta(t *testing.T) {
	f := newProductFixtures()
	for i := 0; i < 5; i++ {
		seedProduct(t, f, string(rune('A'+i))+"00")
	}

	resp, err := f.uc.List(context.Background(), dto.ProductListRequest{
		Page: dto.PageRequest{Page: 99, Items: 2},
	})
	require.NoError(t, err)

	// 5 productos / 2 por página = 3 páginas; la 99 se ajusta a la última.
	assert.Equal(t, 3, resp.Page.Pages)
	assert.Equal(t, 3, resp.Page.Page)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Page.Total)
}

func TestProductList_PaginaCeroUsaLaPrimera(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")

	resp, err := f.uc.List(context.Background(), dto.ProductListRequest{
		Page: dto.PageRequest{Page: 0, Items: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page.Page)
	assert.Equal(t, dto.DefaultPageSize, resp.Page.Items)
}

func TestProductList_SinResultadosUnaPaginaVacia(t *testing.T) {
	f := newProductFixtures()
	resp, err := f.uc.List(context.Background(), dto.ProductListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Page.Total)
	assert.Equal(t, 1, resp.Page.Pages)
	assert.Empty(t, resp.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Imagen servida / caché de dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestProductImagePath_ResuelveRutaAbsoluta(t *testing.T) {
	f := newProductFixtures()
	image := &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{0xFF}}
	res, err := f.uc.Create(context.Background(), validCreateRequest("001"), image)
	require.NoError(t, err)

	path, err := f.uc.ImagePath(context.Background(), res.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "/media/"+res.Product.ImagePath, path)
}

func TestProductImagePath_SinImagenEs404(t *testing.T) {
	f := newProductFixtures()
	created := seedProduct(t, f, "001")

	_, err := f.uc.ImagePath(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cada mutación de catálogo descarta el resumen cacheado del dashboard;
// las lecturas y los no-op no lo tocan.
func TestProductMutaciones_InvalidanResumenDeDashboard(t *testing.T) {
	f := newProductFixtures()

	created := seedProduct(t, f, "001")
	assert.Equal(t, 1, f.summary.calls, "crear invalida")

	_, err := f.uc.Update(context.Background(), created.ID, dto.ProductPatch{Name: strPtr("Otro nombre")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, f.summary.calls, "actualizar invalida")

	_, err = f.uc.Disable(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, f.summary.calls, "deshabilitar invalida")

	// Deshabilitar lo ya deshabilitado es no-op: el caché no se toca.
	_, err = f.uc.Disable(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, f.summary.calls)

	_, err = f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, f.summary.calls, "leer no invalida")

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))
	assert.Equal(t, 4, f.summary.calls, "eliminar invalida")
}

func TestProductList_SoloDisponibles(t *testing.T) {
	f := newProductFixtures()
	seedProduct(t, f, "001")
	disabled := seedProduct(t, f, "002")
	_, err := f.uc.Disable(context.Background(), disabled.ID)
	require.NoError(t, err)

	resp, err := f.uc.List(context.Background(), dto.ProductListRequest{OnlyAvailable: true})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "SKU-001", resp.Items[0].SKU)
}
