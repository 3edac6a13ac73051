package postgres

import (
	"context"
	"fmt"

	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregaciones de solo lectura para los dashboards.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountUsersByRole cuenta usuarios totales y por rol en una sola consulta.
func (r *StatsRepo) CountUsersByRole(ctx context.Context) (repository.UserCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE role = 'admin'),
		       COUNT(*) FILTER (WHERE role = 'manager')
		FROM users`
	var counts repository.UserCounts
	if err := r.q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Admins, &counts.Managers); err != nil {
		return repository.UserCounts{}, fmt.Errorf("count users: %w", err)
	}
	return counts, nil
}

// CountCooperatives cuenta todas las cooperativas.
func (r *StatsRepo) CountCooperatives(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cooperatives`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cooperatives: %w", err)
	}
	return n, nil
}

// CountProducts cuenta todos los productos.
func (r *StatsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
