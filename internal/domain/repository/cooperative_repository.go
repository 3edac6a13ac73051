package repository

import (
	"context"

	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
)

// CooperativeRepository define el puerto de persistencia para Cooperative (DIP).
// Los Get* devuelven (nil, nil) cuando no existe la fila.
type CooperativeRepository interface {
	Create(ctx context.Context, coop *entity.Cooperative) error
	GetByID(ctx context.Context, id string) (*entity.Cooperative, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cooperative, error)
	List(ctx context.Context) ([]*entity.Cooperative, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Cooperative, error)
	Update(ctx context.Context, coop *entity.Cooperative) error
	Delete(ctx context.Context, id string) error
}
