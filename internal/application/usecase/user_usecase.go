package usecase

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
	"github.com/coopmarket/coopmarket-api/pkg/logger"
)

// UserUseCase CRUD de usuarios para el panel admin. El registro público vive
// en el paquete auth; aquí un admin puede crear admins o managers.
type UserUseCase struct {
	repo    repository.UserRepository
	images  ports.ImageStore
	log     *logger.Logger
	baseURL string
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, images ports.ImageStore, log *logger.Logger, baseURL string) *UserUseCase {
	return &UserUseCase{repo: repo, images: images, log: log, baseURL: baseURL}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u, uc.baseURL))
	}
	return items, nil
}

// Create valida, hashea el password con bcrypt y persiste un usuario nuevo.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest, image *multipart.FileHeader) (*dto.UserResponse, error) {
	vErr := domain.NewValidationError()
	if in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	if in.Email == "" {
		vErr.Add("email", "The email field is required.")
	} else if !validEmail(in.Email) {
		vErr.Add("email", "The email must be a valid email address.")
	}
	if in.Password == "" {
		vErr.Add("password", "The password field is required.")
	} else if len(in.Password) < 6 {
		vErr.Add("password", "The password must be at least 6 characters.")
	}
	if in.Role == "" {
		vErr.Add("role", "The role field is required.")
	} else if !entity.ValidRole(in.Role) {
		vErr.Add("role", "The selected role is invalid.")
	}
	validateImage(vErr, image, userImageExts)
	if !vErr.HasErrors() {
		existing, err := uc.repo.GetByEmail(ctx, in.Email)
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

	imagePath := ""
	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryUsers)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Adresse:      in.Adresse,
		Image:        imagePath,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			dup := domain.NewValidationError()
			dup.Add("email", "The email has already been taken.")
			return nil, dup
		}
		return nil, err
	}
	return toUserResponse(user, uc.baseURL), nil
}

// Update fusiona solo los campos presentes; con imagen nueva reemplaza la anterior.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest, image *multipart.FileHeader) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	vErr := domain.NewValidationError()
	if in.Name != nil && *in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			vErr.Add("email", "The email must be a valid email address.")
		} else if *in.Email != user.Email {
			existing, err := uc.repo.GetByEmail(ctx, *in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				vErr.Add("email", "The email has already been taken.")
			}
		}
	}
	if in.Password != nil && len(*in.Password) < 6 {
		vErr.Add("password", "The password must be at least 6 characters.")
	}
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		vErr.Add("role", "The selected role is invalid.")
	}
	validateImage(vErr, image, userImageExts)
	if vErr.HasErrors() {
		return nil, vErr
	}

	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryUsers)
		if err != nil {
			return nil, err
		}
		if user.Image != "" {
			if err := uc.images.Delete(user.Image); err != nil {
				uc.log.Warn().Err(err).Str("path", user.Image).Msg("no se pudo eliminar la imagen anterior")
			}
		}
		user.Image = path
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Adresse != nil {
		user.Adresse = *in.Adresse
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user, uc.baseURL), nil
}

// Delete elimina el usuario y su imagen guardada (best-effort). Devuelve los
// datos del usuario eliminado para la respuesta, o domain.ErrNotFound.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if user.Image != "" {
		if err := uc.images.Delete(user.Image); err != nil {
			uc.log.Warn().Err(err).Str("path", user.Image).Msg("no se pudo eliminar la imagen del usuario")
		}
	}
	return toUserResponse(user, uc.baseURL), nil
}
