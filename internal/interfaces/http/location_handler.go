package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
)

// LocationHandler consultas de regiones y comunas (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

func (h *LocationHandler) ListRegions(c *fiber.Ctx) error {
	out, err := h.uc.ListRegions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *LocationHandler) ListCommunes(c *fiber.Ctx) error {
	out, err := h.uc.ListCommunes(c.UserContext(), c.Query("region"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
