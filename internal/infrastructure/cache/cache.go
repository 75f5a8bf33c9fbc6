// Package cache implementa un caché de lecturas sobre Redis, usado para el
// resumen del dashboard. El caché es opcional: si Redis no está configurado
// los casos de uso operan directo contra PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// ErrMiss indica que la clave no está en caché (no es una falla).
var ErrMiss = errors.New("cache: miss")

// Claves usadas por la aplicación.
const (
	KeyDashboardSummary = "dash:summary"
)

// Cache envuelve el cliente Redis con serialización JSON y TTL por defecto.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New construye el caché. addr vacío devuelve nil (caché deshabilitado).
func New(addr, password string, db int, ttl time.Duration, log *logger.Logger) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, ttl: ttl, log: log.Module("cache")}
}

// Ping verifica conectividad con Redis.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Get deserializa el valor de key en dest. Devuelve ErrMiss si no existe.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return nil
}

// Set serializa y guarda value bajo key con el TTL por defecto.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate borra las claves indicadas. Los errores sólo se loguean: perder
// una invalidación implica servir datos viejos hasta que expire el TTL.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("no se pudo invalidar caché")
	}
}

// Close cierra la conexión con Redis.
func (c *Cache) Close() error {
	return c.client.Close()
}
