package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Las lecturas hacen LEFT JOIN con cooperatives para cargar la proyección
// CooperativeRef en la misma consulta. El id de la cooperativa se escanea
// como puntero: nil indica relación no resuelta.
const productSelect = `
	SELECT p.id, p.cooperative_id, p.name, COALESCE(p.description, ''), COALESCE(p.image, ''),
	       p.price, p.quantity, p.created_at, p.updated_at,
	       c.id, COALESCE(c.nom, ''), COALESCE(c.email, ''), COALESCE(c.description, ''),
	       COALESCE(c.image, ''), COALESCE(c.tele, ''), COALESCE(c.whatsapp, '')
	FROM products p
	LEFT JOIN cooperatives c ON c.id = p.cooperative_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, cooperative_id, name, description, image, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CooperativeID, product.Name, product.Description, product.Image,
		product.Price, product.Quantity, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con su cooperativa, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.queryMany(ctx, productSelect+` ORDER BY p.created_at DESC`)
}

// ListRecent devuelve los `limit` productos más recientes.
func (r *ProductRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.queryMany(ctx, productSelect+` ORDER BY p.created_at DESC LIMIT $1`, limit)
}

// ListByCooperative devuelve los productos de una cooperativa, más recientes primero.
func (r *ProductRepo) ListByCooperative(ctx context.Context, cooperativeID string) ([]*entity.Product, error) {
	return r.queryMany(ctx, productSelect+` WHERE p.cooperative_id = $1 ORDER BY p.created_at DESC`, cooperativeID)
}

// Update actualiza todos los campos mutables de un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET cooperative_id = $2, name = $3, description = NULLIF($4, ''), image = NULLIF($5, ''),
		    price = $6, quantity = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CooperativeID, product.Name, product.Description, product.Image,
		product.Price, product.Quantity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p     entity.Product
		refID *string
		ref   entity.CooperativeRef
	)
	err := row.Scan(
		&p.ID, &p.CooperativeID, &p.Name, &p.Description, &p.Image,
		&p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
		&refID, &ref.Nom, &ref.Email, &ref.Description,
		&ref.Image, &ref.Tele, &ref.Whatsapp,
	)
	if err != nil {
		return nil, err
	}
	if refID != nil {
		ref.ID = *refID
		p.Cooperative = &ref
	}
	return &p, nil
}
