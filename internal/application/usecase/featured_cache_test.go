package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
)

func newCachedCooperativeUC(repo *mockCooperativeRepo, cache *mockCache) *CooperativeUseCase {
	return NewCooperativeUseCase(repo, new(mockImageStore), cache, testLogger(), testBaseURL)
}

func newCachedProductUC(repo *mockProductRepo, cache *mockCache) *ProductUseCase {
	return NewProductUseCase(repo, new(mockCooperativeRepo), new(mockImageStore), cache, testLogger(), testBaseURL)
}

// Hit: con la clave poblada no se toca la base de datos.
func TestCooperativeUseCase_Featured_SirveDesdeCache(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	cached, err := json.Marshal([]dto.FeaturedCooperativeResponse{
		{ID: "c1", Nom: "Atlas", Description: "miel", Image: testBaseURL + "/uploads/cooperatives/a.jpg"},
	})
	require.NoError(t, err)
	cache.On("Get", mock.Anything, "featured:cooperatives").Return(string(cached), nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Atlas", out[0].Nom)
	repo.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything)
}

// Miss: se lee de la DB y se puebla la clave con el TTL de featured.
func TestCooperativeUseCase_Featured_MissPueblaElCache(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	cache.On("Get", mock.Anything, "featured:cooperatives").Return("", ports.ErrCacheMiss)
	repo.On("ListRecent", mock.Anything, 4).Return([]*entity.Cooperative{
		{ID: "c1", Nom: "Atlas"},
	}, nil)

	var stored string
	cache.On("Set", mock.Anything, "featured:cooperatives", mock.AnythingOfType("string"), 5*time.Minute).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	cache.AssertExpectations(t)
	var roundTrip []dto.FeaturedCooperativeResponse
	require.NoError(t, json.Unmarshal([]byte(stored), &roundTrip))
	assert.Equal(t, out, roundTrip, "lo cacheado debe ser exactamente la proyección servida")
}

// Un caché caído degrada a la DB sin propagar el error.
func TestCooperativeUseCase_Featured_FalloDeCacheDegradaADB(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	cache.On("Get", mock.Anything, "featured:cooperatives").Return("", errors.New("redis caído"))
	cache.On("Set", mock.Anything, "featured:cooperatives", mock.Anything, mock.Anything).
		Return(errors.New("redis caído"))
	repo.On("ListRecent", mock.Anything, 4).Return([]*entity.Cooperative{
		{ID: "c1", Nom: "Atlas"},
	}, nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// Un valor cacheado corrupto se ignora y se vuelve a la DB.
func TestCooperativeUseCase_Featured_ValorCorruptoVaALaDB(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	cache.On("Get", mock.Anything, "featured:cooperatives").Return("{no-es-json", nil)
	cache.On("Set", mock.Anything, "featured:cooperatives", mock.Anything, mock.Anything).Return(nil)
	repo.On("ListRecent", mock.Anything, 4).Return([]*entity.Cooperative{
		{ID: "c1", Nom: "Atlas"},
	}, nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// Crear una cooperativa invalida su clave featured.
func TestCooperativeUseCase_Create_InvalidaFeatured(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	repo.On("GetByEmail", mock.Anything, "atlas@test.ma").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Cooperative")).Return(nil)
	cache.On("Delete", mock.Anything, "featured:cooperatives").Return(nil)

	_, err := uc.Create(context.Background(), dto.CreateCooperativeRequest{
		Nom:   "Atlas",
		Email: "atlas@test.ma",
	}, nil)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

// Borrar una cooperativa invalida ambas claves: la cascada de la FK también
// elimina sus productos, así que el featured de productos queda obsoleto.
func TestCooperativeUseCase_Delete_InvalidaAmbasClavesFeatured(t *testing.T) {
	repo := new(mockCooperativeRepo)
	cache := new(mockCache)
	uc := newCachedCooperativeUC(repo, cache)

	repo.On("GetByID", mock.Anything, "coop-1").Return(&entity.Cooperative{ID: "coop-1"}, nil)
	repo.On("Delete", mock.Anything, "coop-1").Return(nil)
	cache.On("Delete", mock.Anything, "featured:cooperatives").Return(nil)
	cache.On("Delete", mock.Anything, "featured:products").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), "coop-1"))
	cache.AssertCalled(t, "Delete", mock.Anything, "featured:cooperatives")
	cache.AssertCalled(t, "Delete", mock.Anything, "featured:products")
}

// Hit en productos: tampoco se toca la base de datos.
func TestProductUseCase_Featured_SirveDesdeCache(t *testing.T) {
	repo := new(mockProductRepo)
	cache := new(mockCache)
	uc := newCachedProductUC(repo, cache)

	cached, err := json.Marshal([]dto.ProductResponse{
		{ID: "p1", Name: "Huile d'argan", CooperativeID: "c1"},
	})
	require.NoError(t, err)
	cache.On("Get", mock.Anything, "featured:products").Return(string(cached), nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Huile d'argan", out[0].Name)
	repo.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything)
}

// Miss en productos puebla la clave con el mismo TTL.
func TestProductUseCase_Featured_MissPueblaElCache(t *testing.T) {
	repo := new(mockProductRepo)
	cache := new(mockCache)
	uc := newCachedProductUC(repo, cache)

	cache.On("Get", mock.Anything, "featured:products").Return("", ports.ErrCacheMiss)
	repo.On("ListRecent", mock.Anything, 6).Return([]*entity.Product{
		{ID: "p1", Name: "Huile d'argan", CooperativeID: "c1"},
	}, nil)
	cache.On("Set", mock.Anything, "featured:products", mock.AnythingOfType("string"), 5*time.Minute).
		Return(nil)

	out, err := uc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	cache.AssertExpectations(t)
}

// Borrar un producto invalida el featured de productos.
func TestProductUseCase_Delete_InvalidaFeatured(t *testing.T) {
	repo := new(mockProductRepo)
	cache := new(mockCache)
	uc := newCachedProductUC(repo, cache)

	repo.On("GetByID", mock.Anything, "p1").Return(&entity.Product{ID: "p1"}, nil)
	repo.On("Delete", mock.Anything, "p1").Return(nil)
	cache.On("Delete", mock.Anything, "featured:products").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), "p1"))
	cache.AssertExpectations(t)
}
