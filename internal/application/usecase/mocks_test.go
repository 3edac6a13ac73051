package usecase

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
	"github.com/coopmarket/coopmarket-api/pkg/logger"
)

// Mocks testify de los puertos de persistencia y almacenamiento.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type mockCooperativeRepo struct{ mock.Mock }

func (m *mockCooperativeRepo) Create(ctx context.Context, c *entity.Cooperative) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCooperativeRepo) GetByID(ctx context.Context, id string) (*entity.Cooperative, error) {
	args := m.Called(ctx, id)
	var c *entity.Cooperative
	if v := args.Get(0); v != nil {
		c = v.(*entity.Cooperative)
	}
	return c, args.Error(1)
}

func (m *mockCooperativeRepo) GetByEmail(ctx context.Context, email string) (*entity.Cooperative, error) {
	args := m.Called(ctx, email)
	var c *entity.Cooperative
	if v := args.Get(0); v != nil {
		c = v.(*entity.Cooperative)
	}
	return c, args.Error(1)
}

func (m *mockCooperativeRepo) List(ctx context.Context) ([]*entity.Cooperative, error) {
	args := m.Called(ctx)
	var list []*entity.Cooperative
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Cooperative)
	}
	return list, args.Error(1)
}

func (m *mockCooperativeRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Cooperative, error) {
	args := m.Called(ctx, limit)
	var list []*entity.Cooperative
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Cooperative)
	}
	return list, args.Error(1)
}

func (m *mockCooperativeRepo) Update(ctx context.Context, c *entity.Cooperative) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCooperativeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	var p *entity.Product
	if v := args.Get(0); v != nil {
		p = v.(*entity.Product)
	}
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	var list []*entity.Product
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Product)
	}
	return list, args.Error(1)
}

func (m *mockProductRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit)
	var list []*entity.Product
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Product)
	}
	return list, args.Error(1)
}

func (m *mockProductRepo) ListByCooperative(ctx context.Context, cooperativeID string) ([]*entity.Product, error) {
	args := m.Called(ctx, cooperativeID)
	var list []*entity.Product
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Product)
	}
	return list, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	var list []*entity.User
	if v := args.Get(0); v != nil {
		list = v.([]*entity.User)
	}
	return list, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) CountUsersByRole(ctx context.Context) (repository.UserCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.UserCounts), args.Error(1)
}

func (m *mockStatsRepo) CountCooperatives(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStatsRepo) CountProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Save(file *multipart.FileHeader, category string) (string, error) {
	args := m.Called(file, category)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Delete(relPath string) error {
	return m.Called(relPath).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
