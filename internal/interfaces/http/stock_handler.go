package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
)

// StockHandler maneja las peticiones HTTP de stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// warehouseParam interpreta ?bodega=all|<id>. "all" y vacío significan todas.
func warehouseParam(c *fiber.Ctx) string {
	bodega := c.Query("bodega", "all")
	if bodega == "all" {
		return ""
	}
	return bodega
}

// List godoc
// @Summary      Consultar stock por bodega o agregado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        bodega            query  string  false  "ID de bodega o all"  default(all)
// @Param        solo_disponibles  query  bool    false  "Sólo disponibles"
// @Success      200  {object}  dto.StockListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.StockByWarehouse(c.UserContext(), warehouseParam(c), c.QueryBool("solo_disponibles"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Aggregate godoc
// @Summary      Stock total de un producto en todas las bodegas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.AggregateStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/products/{id} [get]
func (h *StockHandler) Aggregate(c *fiber.Ctx) error {
	out, err := h.uc.AggregateStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste masivo de stock sobre una bodega
// @Description  Cada línea se aplica o rechaza por separado; sólo la bodega inexistente rechaza el lote
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Bodega y líneas de ajuste"
// @Success      200  {object}  dto.AdjustStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/ajustes [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.AdjustStock(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Enable godoc
// @Summary      Habilitar producto en todas las bodegas
// @Description  Marca disponible sin tocar cantidades (señales independientes)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/enable [post]
func (h *StockHandler) Enable(c *fiber.Ctx) error {
	out, err := h.uc.EnableEverywhere(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar stock como CSV (UTF-8 con BOM)
// @Tags         stock
// @Security     Bearer
// @Produce      text/csv
// @Param        bodega  query  string  false  "ID de bodega o all"  default(all)
// @Success      200
// @Router       /api/stock/export.csv [get]
func (h *StockHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.UserContext(), warehouseParam(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.csv"`)
	return c.Send(data)
}

// ReportPDF godoc
// @Summary      Informe de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        bodega  query  string  false  "ID de bodega o all"  default(all)
// @Success      200
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ReportPDF(c.UserContext(), warehouseParam(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(data)
}
