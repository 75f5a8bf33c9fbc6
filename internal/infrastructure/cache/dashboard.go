package cache

import (
	"context"
	"errors"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
)

// DashboardCache implementa el caché del resumen del dashboard sobre Redis.
type DashboardCache struct {
	cache *Cache
}

// NewDashboardCache devuelve nil si el caché base está deshabilitado, de modo
// que el caso de uso opere sin caché.
func NewDashboardCache(c *Cache) *DashboardCache {
	if c == nil {
		return nil
	}
	return &DashboardCache{cache: c}
}

// GetSummary devuelve el resumen cacheado y true si hubo hit.
func (d *DashboardCache) GetSummary(ctx context.Context) (*dto.DashboardSummary, bool) {
	var summary dto.DashboardSummary
	err := d.cache.Get(ctx, KeyDashboardSummary, &summary)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			d.cache.log.Warn().Err(err).Msg("lectura de caché del dashboard falló")
		}
		return nil, false
	}
	return &summary, true
}

// SetSummary cachea el resumen; un fallo sólo se loguea.
func (d *DashboardCache) SetSummary(ctx context.Context, summary *dto.DashboardSummary) {
	if err := d.cache.Set(ctx, KeyDashboardSummary, summary); err != nil {
		d.cache.log.Warn().Err(err).Msg("escritura de caché del dashboard falló")
	}
}

// InvalidateSummary descarta el resumen cacheado tras una mutación de
// catálogo o stock, para que la próxima consulta recalcule.
func (d *DashboardCache) InvalidateSummary(ctx context.Context) {
	d.cache.Invalidate(ctx, KeyDashboardSummary)
}
