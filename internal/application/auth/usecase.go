// Package auth contiene los casos de uso de autenticación: registro público,
// login y consulta del principal autenticado. El logout es del lado del
// cliente: el token simplemente se descarta.
package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
	"github.com/coopmarket/coopmarket-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	baseURL  string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, baseURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, baseURL: baseURL}
}

// Register registra un usuario público. El rol es siempre manager: los admins
// solo se crean desde el panel admin.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	vErr := domain.NewValidationError()
	if in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	if in.Email == "" {
		vErr.Add("email", "The email field is required.")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		vErr.Add("email", "The email must be a valid email address.")
	}
	if in.Password == "" {
		vErr.Add("password", "The password field is required.")
	} else if len(in.Password) < 6 {
		vErr.Add("password", "The password must be at least 6 characters.")
	}
	if !vErr.HasErrors() {
		existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			vErr.Add("email", "The email has already been taken.")
		}
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleManager,
		Adresse:      in.Adresse,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			dup := domain.NewValidationError()
			dup.Add("email", "The email has already been taken.")
			return nil, dup
		}
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *uc.toUserResponse(user)}, nil
}

// Login verifica email/password y genera un JWT con el claim de rol.
// Credenciales inválidas devuelven domain.ErrUnauthorized sin distinguir causa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	vErr := domain.NewValidationError()
	if in.Email == "" {
		vErr.Add("email", "The email field is required.")
	}
	if in.Password == "" {
		vErr.Add("password", "The password field is required.")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *uc.toUserResponse(user)}, nil
}

// Me devuelve el usuario autenticado o domain.ErrUserNotFound.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.toUserResponse(user), nil
}

func (uc *AuthUseCase) toUserResponse(u *entity.User) *dto.UserResponse {
	image := u.Image
	if image != "" {
		image = strings.TrimRight(uc.baseURL, "/") + "/" + strings.TrimLeft(image, "/")
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Adresse:   u.Adresse,
		Image:     image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
