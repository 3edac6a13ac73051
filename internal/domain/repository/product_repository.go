package repository

import (
	"context"

	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas cargan la proyección CooperativeRef de la cooperativa dueña;
// GetByID devuelve (nil, nil) cuando no existe la fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)
	ListByCooperative(ctx context.Context, cooperativeID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
