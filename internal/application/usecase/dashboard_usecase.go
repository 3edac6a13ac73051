package usecase

import (
	"context"
	"fmt"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
)

// DashboardUseCase agrega los conteos de los paneles admin y manager.
// Solo consultas COUNT de solo lectura; nada de estado.
type DashboardUseCase struct {
	stats    repository.StatsRepository
	userRepo repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, userRepo repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, userRepo: userRepo}
}

// AdminSummary construye las estadísticas del panel admin.
// Las tres consultas corren en paralelo.
func (uc *DashboardUseCase) AdminSummary(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	type usersResult struct {
		counts repository.UserCounts
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	usersCh := make(chan usersResult, 1)
	coopsCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)

	go func() {
		counts, err := uc.stats.CountUsersByRole(ctx)
		usersCh <- usersResult{counts, err}
	}()
	go func() {
		n, err := uc.stats.CountCooperatives(ctx)
		coopsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()

	users := <-usersCh
	coops := <-coopsCh
	products := <-productsCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de usuarios: %w", users.err)
	}
	if coops.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de cooperativas: %w", coops.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}

	return &dto.AdminDashboardResponse{
		Role: entity.RoleAdmin,
		Stats: dto.AdminDashboardStats{
			TotalUsers:   users.counts.Total,
			Admins:       users.counts.Admins,
			Managers:     users.counts.Managers,
			Cooperatives: coops.n,
			Products:     products.n,
		},
		Message: "Bienvenue dans le dashboard Admin",
	}, nil
}

// ManagerSummary construye el resumen del panel manager para el usuario autenticado.
func (uc *DashboardUseCase) ManagerSummary(ctx context.Context, userID, baseURL string) (*dto.ManagerDashboardResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	products, err := uc.stats.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", err)
	}
	return &dto.ManagerDashboardResponse{
		Role:     entity.RoleManager,
		User:     toUserResponse(user, baseURL),
		Products: products,
		Message:  "Bienvenue dans le dashboard manager",
	}, nil
}
