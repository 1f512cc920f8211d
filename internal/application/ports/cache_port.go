package ports

import (
	"context"
	"time"
)

// Claves de caché compartidas entre casos de uso.
const (
	CacheKeyItems        = "items:list"
	CacheKeyItemStats    = "items:stats"
	CacheKeySalesSummary = "sales:summary"
)

// Cache es un caché read-through de respuestas de listado. Nunca es
// autoritativo: se invalida tras cada mutación exitosa y un fallo de caché
// degrada a leer de la DB, no a error.
type Cache interface {
	// Get deserializa el valor en dest; ok=false si la clave no existe.
	Get(ctx context.Context, key string, dest any) (ok bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
