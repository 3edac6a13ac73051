package usecase

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
	"github.com/coopmarket/coopmarket-api/pkg/logger"
)

const (
	featuredProductsKey   = "featured:products"
	featuredProductsLimit = 6
)

// ProductUseCase casos de uso CRUD para productos. La cooperativa dueña debe
// existir al escribir; las lecturas siempre adjuntan su proyección pública.
type ProductUseCase struct {
	repo     repository.ProductRepository
	coopRepo repository.CooperativeRepository
	images   ports.ImageStore
	cache    ports.Cache // nil desactiva el caché
	log      *logger.Logger
	baseURL  string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, coopRepo repository.CooperativeRepository, images ports.ImageStore, cache ports.Cache, log *logger.Logger, baseURL string) *ProductUseCase {
	return &ProductUseCase{repo: repo, coopRepo: coopRepo, images: images, cache: cache, log: log, baseURL: baseURL}
}

// List devuelve todos los productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list), nil
}

// Featured devuelve los 6 productos más recientes, sirviendo desde caché cuando es posible.
func (uc *ProductUseCase) Featured(ctx context.Context) ([]dto.ProductResponse, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, featuredProductsKey); err == nil {
			var cached []dto.ProductResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}
	list, err := uc.repo.ListRecent(ctx, featuredProductsLimit)
	if err != nil {
		return nil, err
	}
	items := uc.toResponses(list)
	if uc.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := uc.cache.Set(ctx, featuredProductsKey, string(raw), featuredTTL); err != nil {
				uc.log.Debug().Err(err).Msg("no se pudo cachear featured products")
			}
		}
	}
	return items, nil
}

// GetByID devuelve un producto con su cooperativa o (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, uc.baseURL), nil
}

// ListByCooperative devuelve los productos de una cooperativa; domain.ErrNotFound
// si la cooperativa no existe.
func (uc *ProductUseCase) ListByCooperative(ctx context.Context, cooperativeID string) ([]dto.ProductResponse, *dto.CooperativeResponse, error) {
	coop, err := uc.coopRepo.GetByID(ctx, cooperativeID)
	if err != nil {
		return nil, nil, err
	}
	if coop == nil {
		return nil, nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCooperative(ctx, cooperativeID)
	if err != nil {
		return nil, nil, err
	}
	return uc.toResponses(list), toCooperativeResponse(coop, uc.baseURL), nil
}

// Create valida (campos requeridos, price ≥ 0 con 2 decimales, quantity entera ≥ 0,
// cooperativa existente) y persiste; la respuesta se relee para adjuntar la relación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, image *multipart.FileHeader) (*dto.ProductResponse, error) {
	vErr := domain.NewValidationError()
	if in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	price := decimal.Zero
	if in.Price == "" {
		vErr.Add("price", "The price field is required.")
	} else {
		p, err := decimal.NewFromString(in.Price)
		switch {
		case err != nil:
			vErr.Add("price", "The price must be a number.")
		case p.IsNegative():
			vErr.Add("price", "The price must be at least 0.")
		default:
			price = p.Round(2)
		}
	}
	quantity := 0
	if in.Quantity == "" {
		vErr.Add("quantity", "The quantity field is required.")
	} else {
		q, err := strconv.Atoi(in.Quantity)
		switch {
		case err != nil:
			vErr.Add("quantity", "The quantity must be an integer.")
		case q < 0:
			vErr.Add("quantity", "The quantity must be at least 0.")
		default:
			quantity = q
		}
	}
	if in.CooperativeID == "" {
		vErr.Add("cooperative_id", "The cooperative id field is required.")
	} else {
		coop, err := uc.coopRepo.GetByID(ctx, in.CooperativeID)
		if err != nil {
			return nil, err
		}
		if coop == nil {
			vErr.Add("cooperative_id", "The selected cooperative id is invalid.")
		}
	}
	validateImage(vErr, image, productImageExts)
	if vErr.HasErrors() {
		return nil, vErr
	}

	imagePath := ""
	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryProducts)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CooperativeID: in.CooperativeID,
		Name:          in.Name,
		Description:   in.Description,
		Image:         imagePath,
		Price:         price,
		Quantity:      quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)

	created, err := uc.repo.GetByID(ctx, product.ID)
	if err != nil || created == nil {
		// la fila existe; si la relectura falla respondemos con lo que tenemos
		return toProductResponse(product, uc.baseURL), nil
	}
	return toProductResponse(created, uc.baseURL), nil
}

// Update fusiona solo los campos presentes y relee la relación antes de responder.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, image *multipart.FileHeader) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	vErr := domain.NewValidationError()
	if in.Name != nil && *in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	if in.Price != nil {
		p, err := decimal.NewFromString(*in.Price)
		switch {
		case err != nil:
			vErr.Add("price", "The price must be a number.")
		case p.IsNegative():
			vErr.Add("price", "The price must be at least 0.")
		default:
			product.Price = p.Round(2)
		}
	}
	if in.Quantity != nil {
		q, err := strconv.Atoi(*in.Quantity)
		switch {
		case err != nil:
			vErr.Add("quantity", "The quantity must be an integer.")
		case q < 0:
			vErr.Add("quantity", "The quantity must be at least 0.")
		default:
			product.Quantity = q
		}
	}
	if in.CooperativeID != nil {
		coop, err := uc.coopRepo.GetByID(ctx, *in.CooperativeID)
		if err != nil {
			return nil, err
		}
		if coop == nil {
			vErr.Add("cooperative_id", "The selected cooperative id is invalid.")
		} else {
			product.CooperativeID = *in.CooperativeID
		}
	}
	validateImage(vErr, image, productImageExts)
	if vErr.HasErrors() {
		return nil, vErr
	}

	if image != nil {
		path, err := uc.images.Save(image, ports.ImageCategoryProducts)
		if err != nil {
			return nil, err
		}
		if product.Image != "" {
			if err := uc.images.Delete(product.Image); err != nil {
				uc.log.Warn().Err(err).Str("path", product.Image).Msg("no se pudo eliminar la imagen anterior")
			}
		}
		product.Image = path
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil || updated == nil {
		return toProductResponse(product, uc.baseURL), nil
	}
	return toProductResponse(updated, uc.baseURL), nil
}

// Delete elimina el producto y su imagen guardada (best-effort).
// Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if product.Image != "" {
		if err := uc.images.Delete(product.Image); err != nil {
			uc.log.Warn().Err(err).Str("path", product.Image).Msg("no se pudo eliminar la imagen del producto")
		}
	}
	uc.invalidateFeatured(ctx)
	return nil
}

func (uc *ProductUseCase) toResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, uc.baseURL))
	}
	return items
}

func (uc *ProductUseCase) invalidateFeatured(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, featuredProductsKey); err != nil {
		uc.log.Debug().Err(err).Msg("no se pudo invalidar featured products")
	}
}
