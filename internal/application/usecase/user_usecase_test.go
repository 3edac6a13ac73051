package usecase

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
)

func newUserUC(repo *mockUserRepo, images *mockImageStore) *UserUseCase {
	return NewUserUseCase(repo, images, testLogger(), testBaseURL)
}

// El password se persiste hasheado con bcrypt, nunca en claro.
func TestUserUseCase_Create_HasheaPassword(t *testing.T) {
	repo := new(mockUserRepo)
	uc := newUserUC(repo, new(mockImageStore))

	repo.On("GetByEmail", mock.Anything, "ana@test.ma").Return(nil, nil)

	var created *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
		Return(nil)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@test.ma",
		Password: "secreto1",
		Role:     entity.RoleManager,
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	require.NotNil(t, created)
	assert.NotEqual(t, "secreto1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secreto1")))
}

// Email duplicado → ValidationError con errors.email.
func TestUserUseCase_Create_EmailDuplicado(t *testing.T) {
	repo := new(mockUserRepo)
	uc := newUserUC(repo, new(mockImageStore))

	repo.On("GetByEmail", mock.Anything, "dup@test.ma").Return(&entity.User{ID: "otro"}, nil)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Dup",
		Email:    "dup@test.ma",
		Password: "secreto1",
		Role:     entity.RoleAdmin,
	}, nil)
	require.Error(t, err)

	vErr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields["email"], "The email has already been taken.")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Rol desconocido → ValidationError; solo admin y manager existen.
func TestUserUseCase_Create_RolInvalido(t *testing.T) {
	uc := newUserUC(new(mockUserRepo), new(mockImageStore))

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@test.ma",
		Password: "secreto1",
		Role:     "superadmin",
	}, nil)
	require.Error(t, err)

	vErr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields["role"], "The selected role is invalid.")
}

// Delete devuelve los datos del usuario eliminado.
func TestUserUseCase_Delete_DevuelveDatos(t *testing.T) {
	repo := new(mockUserRepo)
	uc := newUserUC(repo, new(mockImageStore))

	repo.On("GetByID", mock.Anything, "u1").
		Return(&entity.User{ID: "u1", Name: "Ana", Email: "ana@test.ma", Role: entity.RoleManager}, nil)
	repo.On("Delete", mock.Anything, "u1").Return(nil)

	out, err := uc.Delete(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "ana@test.ma", out.Email)
}

func TestUserUseCase_Delete_NoExiste(t *testing.T) {
	repo := new(mockUserRepo)
	uc := newUserUC(repo, new(mockImageStore))

	repo.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
