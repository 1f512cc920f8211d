// Package rediscache implementa el puerto de caché sobre Redis.
// El caché solo guarda respuestas de listado serializadas; nunca es la fuente
// de verdad (la DB lo es) y se invalida tras cada mutación exitosa.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcastro/gastro-ops/internal/application/ports"
)

const keyPrefix = "gastroops:"

var _ ports.Cache = (*Cache)(nil)

// Cache adaptador de ports.Cache sobre go-redis.
type Cache struct {
	client *redis.Client
}

// New construye el adaptador con un cliente ya configurado.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get deserializa el valor en dest; ok=false si la clave no existe.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Entrada corrupta: se descarta y se lee de la DB.
		_ = c.client.Del(ctx, keyPrefix+key).Err()
		return false, nil
	}
	return true, nil
}

// Set serializa y guarda el valor con TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

// Delete invalida las claves indicadas.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	return c.client.Del(ctx, prefixed...).Err()
}
