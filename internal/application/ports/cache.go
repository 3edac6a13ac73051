package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss se devuelve cuando la clave no existe en el caché.
var ErrCacheMiss = errors.New("cache: clave no encontrada")

// Cache contrato mínimo de caché para las proyecciones "featured".
// Un fallo de caché nunca debe fallar la petición: los casos de uso degradan a DB.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
