package dto

// PageRequest paginación por página para listados.
// Page fuera de rango no es error: se ajusta (≤0 → 1, mayor que el total →
// última página). Items ≤0 usa el tamaño por defecto.
type PageRequest struct {
	Page  int `query:"pagina"`
	Items int `query:"items"`
}

// DefaultPageSize tamaño de página por defecto en listados.
const DefaultPageSize = 20

// Normalize aplica los valores por defecto.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Items <= 0 {
		p.Items = DefaultPageSize
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Items int `json:"items"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
