package repository

import "context"

// UserCounts agrupa los conteos de usuarios por rol para el dashboard admin.
type UserCounts struct {
	Total    int
	Admins   int
	Managers int
}

// StatsRepository consultas de agregación de solo lectura para los dashboards.
type StatsRepository interface {
	CountUsersByRole(ctx context.Context) (UserCounts, error)
	CountCooperatives(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
}
