package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/pkg/jwt"
)

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

var testJWT = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "coopmarket-test"}

// El registro público siempre crea un manager, aunque el cliente intente otra cosa.
func TestRegister_FuerzaRolManager(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, testJWT, "http://localhost:8080")

	repo.On("GetByEmail", mock.Anything, "ana@test.ma").Return(nil, nil)

	var created *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
		Return(nil)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@test.ma",
		Password: "secreto1",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.NotNil(t, created)
	assert.Equal(t, entity.RoleManager, created.Role)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	// El token lleva el claim de rol para el middleware
	userID, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleManager, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, testJWT, "http://localhost:8080")

	repo.On("GetByEmail", mock.Anything, "dup@test.ma").Return(&entity.User{ID: "otro"}, nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Dup",
		Email:    "dup@test.ma",
		Password: "secreto1",
	})
	require.Error(t, err)

	vErr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields["email"], "The email has already been taken.")
}

func TestLogin_OK(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, testJWT, "http://localhost:8080")

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "ana@test.ma").
		Return(&entity.User{ID: "u1", Email: "ana@test.ma", PasswordHash: string(hash), Role: entity.RoleAdmin}, nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@test.ma", Password: "secreto1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	_, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Credenciales inválidas no distinguen entre usuario inexistente y password incorrecto.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, testJWT, "http://localhost:8080")

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "ana@test.ma").
		Return(&entity.User{ID: "u1", PasswordHash: string(hash)}, nil)
	repo.On("GetByEmail", mock.Anything, "nadie@test.ma").Return(nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@test.ma", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@test.ma", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_UsuarioNoExiste(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, testJWT, "http://localhost:8080")

	repo.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := uc.Me(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
