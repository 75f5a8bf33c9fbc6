package http

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para el catálogo (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  JSON o multipart/form-data con campo "image" para la foto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.CreateProductResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	var image *dto.ImageUpload

	if isMultipart(c) {
		parsed, img, err := parseProductForm(c)
		if err != nil {
			return badRequest(c, "INVALID_BODY", err.Error())
		}
		in, image = parsed, img
	} else {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}

	out, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Image sirve la foto del producto desde el media storage (404 si no tiene).
func (h *ProductHandler) Image(c *fiber.Ctx) error {
	path, err := h.uc.ImagePath(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.SendFile(path)
}

// List godoc
// @Summary      Listar productos
// @Description  Página fuera de rango se ajusta a la primera o última, nunca falla
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoria         query  string  false  "ID de categoría"
// @Param        search            query  string  false  "Búsqueda parcial por nombre, sku o barcode"
// @Param        orden             query  string  false  "Campo de orden (prefijo - para descendente)"
// @Param        pagina            query  int     false  "Página"  default(1)
// @Param        items             query  int     false  "Ítems por página"  default(20)
// @Param        solo_disponibles  query  bool    false  "Sólo disponibles"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	in := dto.ProductListRequest{
		CategoryID:    c.Query("categoria"),
		Search:        c.Query("search"),
		OrderBy:       c.Query("orden"),
		OnlyAvailable: c.QueryBool("solo_disponibles"),
		Page: dto.PageRequest{
			// QueryInt devuelve el default ante valores no numéricos:
			// "pagina=abc" termina en la página 1, no en un 400.
			Page:  c.QueryInt("pagina", 1),
			Items: c.QueryInt("items", dto.DefaultPageSize),
		},
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (patch parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var patch dto.ProductPatch
	var image *dto.ImageUpload

	if isMultipart(c) {
		parsed, img, err := parseProductPatchForm(c)
		if err != nil {
			return badRequest(c, "INVALID_BODY", err.Error())
		}
		patch, image = parsed, img
	} else {
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), patch, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Deshabilitar producto (idempotente)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.DisableResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/disable [post]
func (h *ProductHandler) Disable(c *fiber.Ctx) error {
	out, err := h.uc.Disable(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/form-data")
}

func parseProductForm(c *fiber.Ctx) (dto.CreateProductRequest, *dto.ImageUpload, error) {
	in := dto.CreateProductRequest{
		SKU:         c.FormValue("sku"),
		Barcode:     c.FormValue("barcode"),
		Name:        c.FormValue("name"),
		ShortName:   c.FormValue("short_name"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("category_id"),
	}
	if v := c.FormValue("sale_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return in, nil, err
		}
		in.SalePrice = &price
	}
	if v := c.FormValue("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return in, nil, err
		}
		in.Available = &available
	}
	image, err := readImageFile(c)
	return in, image, err
}

func parseProductPatchForm(c *fiber.Ctx) (dto.ProductPatch, *dto.ImageUpload, error) {
	var patch dto.ProductPatch
	setIfPresent := func(field string, dst **string) {
		if v := c.FormValue(field); v != "" {
			*dst = &v
		}
	}
	setIfPresent("sku", &patch.SKU)
	setIfPresent("barcode", &patch.Barcode)
	setIfPresent("name", &patch.Name)
	setIfPresent("short_name", &patch.ShortName)
	setIfPresent("description", &patch.Description)
	setIfPresent("category_id", &patch.CategoryID)
	if v := c.FormValue("sale_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return patch, nil, err
		}
		patch.SalePrice = &price
	}
	if v := c.FormValue("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return patch, nil, err
		}
		patch.Available = &available
	}
	image, err := readImageFile(c)
	return patch, image, err
}

// readImageFile lee el campo multipart "image". Que no venga no es error.
func readImageFile(c *fiber.Ctx) (*dto.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	data, err := readAll(fh)
	if err != nil {
		return nil, err
	}
	return &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
