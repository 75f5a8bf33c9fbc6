package usecase

import (
	"context"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

// LocationUseCase consultas de referencia geográfica (regiones y comunas).
type LocationUseCase struct {
	locations repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locations repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations}
}

// ListRegions lista las regiones ordenadas por nombre.
func (uc *LocationUseCase) ListRegions(ctx context.Context) ([]dto.RegionResponse, error) {
	list, err := uc.locations.ListRegions()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.RegionResponse{ID: r.ID, Name: r.Name})
	}
	return items, nil
}

// ListCommunes lista comunas, opcionalmente de una región.
func (uc *LocationUseCase) ListCommunes(ctx context.Context, regionID string) ([]dto.CommuneResponse, error) {
	list, err := uc.locations.ListCommunes(regionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommuneResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CommuneResponse{ID: c.ID, Name: c.Name, RegionID: c.RegionID})
	}
	return items, nil
}
