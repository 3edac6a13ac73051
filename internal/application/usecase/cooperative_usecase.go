package usecase

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
	"github.com/coopmarket/coopmarket-api/pkg/logger"
)

const (
	featuredCooperativesKey   = "featured:cooperatives"
	featuredCooperativesLimit = 4
	featuredTTL               = 5 * time.Minute
)

// CooperativeUseCase casos de uso CRUD para cooperativas, incluida la gestión
// best-effort de su imagen y el caché de la proyección featured.
type CooperativeUseCase struct {
	repo    repository.CooperativeRepository
	images  ports.ImageStore
	cache   ports.Cache // nil desactiva el caché
	log     *logger.Logger
	baseURL string
}

// NewCooperativeUseCase construye el caso de uso.
func NewCooperativeUseCase(repo repository.CooperativeRepository, images ports.ImageStore, cache ports.Cache, log *logger.Logger, baseURL string) *CooperativeUseCase {
	return &CooperativeUseCase{repo: repo, images: images, cache: cache, log: log, baseURL: baseURL}
}

// List devuelve todas las cooperativas, más recientes primero.
func (uc *CooperativeUseCase) List(ctx context.Context) ([]dto.CooperativeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CooperativeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCooperativeResponse(c, uc.baseURL))
	}
	return items, nil
}

// Featured devuelve las 4 cooperativas más recientes en proyección reducida,
// sirviendo desde caché cuando es posible.
func (uc *CooperativeUseCase) Featured(ctx context.Context) ([]dto.FeaturedCooperativeResponse, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, featuredCooperativesKey); err == nil {
			var cached []dto.FeaturedCooperativeResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}
	list, err := uc.repo.ListRecent(ctx, featuredCooperativesLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeaturedCooperativeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toFeaturedCooperativeResponse(c, uc.baseURL))
	}
	if uc.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := uc.cache.Set(ctx, featuredCooperativesKey, string(raw), featuredTTL); err != nil {
				uc.log.Debug().Err(err).Msg("no se pudo cachear featured cooperatives")
			}
		}
	}
	return items, nil
}

// GetByID devuelve una cooperativa o (nil, nil) si no existe.
func (uc *CooperativeUseCase) GetByID(ctx context.Context, id string) (*dto.CooperativeResponse, error) {
	coop, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCooperativeResponse(coop, uc.baseURL), nil
}

// Create valida y persiste una cooperativa nueva; si hay imagen la guarda primero.
func (uc *CooperativeUseCase) Create(ctx context.Context, in dto.CreateCooperativeRequest, image *multipart.FileHeader) (*dto.CooperativeResponse, error) {
	vErr := domain.NewValidationError()
	if in.Nom == "" {
		vErr.Add("nom", "The nom field is required.")
	}
	if in.Email == "" {
		vErr.Add("email", "The email field is required.")
	} else if !validEmail(in.Email) {
		vErr.Add("email", "The email must be a valid email address.")
	}
	validateImage(vErr, image, cooperativeImageExts)
	if !vErr.HasErrors() && in.Email != "" {
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

	imagePath := ""
	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryCooperatives)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	now := time.Now()
	coop := &entity.Cooperative{
		ID:          uuid.New().String(),
		Nom:         in.Nom,
		Email:       in.Email,
		Description: in.Description,
		Adresse:     in.Adresse,
		Image:       imagePath,
		Contact:     in.Contact,
		Tele:        in.Tele,
		Instagram:   in.Instagram,
		Facebook:    in.Facebook,
		Whatsapp:    in.Whatsapp,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, coop); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			// carrera con otro insert: la constraint única de la DB manda
			dup := domain.NewValidationError()
			dup.Add("email", "The email has already been taken.")
			return nil, dup
		}
		return nil, err
	}
	uc.invalidateFeatured(ctx)
	return toCooperativeResponse(coop, uc.baseURL), nil
}

// Update fusiona solo los campos presentes; con imagen nueva reemplaza la
// anterior y elimina el archivo viejo de forma best-effort.
func (uc *CooperativeUseCase) Update(ctx context.Context, id string, in dto.UpdateCooperativeRequest, image *multipart.FileHeader) (*dto.CooperativeResponse, error) {
	coop, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coop == nil {
		return nil, nil
	}

	vErr := domain.NewValidationError()
	if in.Nom != nil && *in.Nom == "" {
		vErr.Add("nom", "The nom field is required.")
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			vErr.Add("email", "The email must be a valid email address.")
		} else if *in.Email != coop.Email {
			existing, err := uc.repo.GetByEmail(ctx, *in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				vErr.Add("email", "The email has already been taken.")
			}
		}
	}
	validateImage(vErr, image, cooperativeImageExts)
	if vErr.HasErrors() {
		return nil, vErr
	}

	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryCooperatives)
		if err != nil {
			return nil, err
		}
		if coop.Image != "" {
			if err := uc.images.Delete(coop.Image); err != nil {
				uc.log.Warn().Err(err).Str("path", coop.Image).Msg("no se pudo eliminar la imagen anterior")
			}
		}
		coop.Image = path
	}
	if in.Nom != nil {
		coop.Nom = *in.Nom
	}
	if in.Email != nil {
		coop.Email = *in.Email
	}
	if in.Description != nil {
		coop.Description = *in.Description
	}
	if in.Adresse != nil {
		coop.Adresse = *in.Adresse
	}
	if in.Contact != nil {
		coop.Contact = *in.Contact
	}
	if in.Tele != nil {
		coop.Tele = *in.Tele
	}
	if in.Instagram != nil {
		coop.Instagram = *in.Instagram
	}
	if in.Facebook != nil {
		coop.Facebook = *in.Facebook
	}
	if in.Whatsapp != nil {
		coop.Whatsapp = *in.Whatsapp
	}
	coop.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, coop); err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)
	return toCooperativeResponse(coop, uc.baseURL), nil
}

// Delete elimina la cooperativa (los productos caen en cascada por la FK) y su
// imagen guardada; el fallo al borrar el archivo no falla la operación.
// Devuelve domain.ErrNotFound si no existe.
func (uc *CooperativeUseCase) Delete(ctx context.Context, id string) error {
	coop, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if coop == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if coop.Image != "" {
		if err := uc.images.Delete(coop.Image); err != nil {
			uc.log.Warn().Err(err).Str("path", coop.Image).Msg("no se pudo eliminar la imagen de la cooperativa")
		}
	}
	uc.invalidateFeatured(ctx)
	// la cascada borra productos: su featured también queda obsoleto
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, featuredProductsKey); err != nil {
			uc.log.Debug().Err(err).Msg("no se pudo invalidar featured products")
		}
	}
	return nil
}

func (uc *CooperativeUseCase) invalidateFeatured(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, featuredCooperativesKey); err != nil {
		uc.log.Debug().Err(err).Msg("no se pudo invalidar featured cooperatives")
	}
}
