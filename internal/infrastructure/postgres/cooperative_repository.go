package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
)

var _ repository.CooperativeRepository = (*CooperativeRepo)(nil)

// Columnas opcionales se guardan como NULL (NULLIF) y se leen como "" (COALESCE),
// así el dominio trabaja solo con strings.
const cooperativeColumns = `
	id, nom, email,
	COALESCE(description, ''), COALESCE(adresse, ''), COALESCE(image, ''),
	COALESCE(contact, ''), COALESCE(tele, ''), COALESCE(instagram, ''),
	COALESCE(facebook, ''), COALESCE(whatsapp, ''),
	created_at, updated_at`

// CooperativeRepo implementación del puerto CooperativeRepository sobre PostgreSQL.
type CooperativeRepo struct {
	q Querier
}

// NewCooperativeRepository construye el adaptador de persistencia para cooperativas.
func NewCooperativeRepository(q Querier) *CooperativeRepo {
	return &CooperativeRepo{q: q}
}

// Create persiste una cooperativa nueva. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *CooperativeRepo) Create(ctx context.Context, coop *entity.Cooperative) error {
	query := `
		INSERT INTO cooperatives (id, nom, email, description, adresse, image, contact, tele, instagram, facebook, whatsapp, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12, $13)`
	_, err := r.q.Exec(ctx, query,
		coop.ID, coop.Nom, coop.Email, coop.Description, coop.Adresse, coop.Image,
		coop.Contact, coop.Tele, coop.Instagram, coop.Facebook, coop.Whatsapp,
		coop.CreatedAt, coop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cooperative: %w", err)
	}
	return nil
}

// GetByID obtiene una cooperativa por ID, o (nil, nil) si no existe.
func (r *CooperativeRepo) GetByID(ctx context.Context, id string) (*entity.Cooperative, error) {
	query := `SELECT ` + cooperativeColumns + ` FROM cooperatives WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get cooperative")
}

// GetByEmail obtiene una cooperativa por email, o (nil, nil) si no existe.
func (r *CooperativeRepo) GetByEmail(ctx context.Context, email string) (*entity.Cooperative, error) {
	query := `SELECT ` + cooperativeColumns + ` FROM cooperatives WHERE email = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get cooperative by email")
}

// List devuelve todas las cooperativas, más recientes primero.
func (r *CooperativeRepo) List(ctx context.Context) ([]*entity.Cooperative, error) {
	query := `SELECT ` + cooperativeColumns + ` FROM cooperatives ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

// ListRecent devuelve las `limit` cooperativas más recientes.
func (r *CooperativeRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Cooperative, error) {
	query := `SELECT ` + cooperativeColumns + ` FROM cooperatives ORDER BY created_at DESC LIMIT $1`
	return r.queryMany(ctx, query, limit)
}

// Update actualiza todos los campos mutables de una cooperativa.
func (r *CooperativeRepo) Update(ctx context.Context, coop *entity.Cooperative) error {
	query := `
		UPDATE cooperatives
		SET nom = $2, email = $3, description = NULLIF($4, ''), adresse = NULLIF($5, ''),
		    image = NULLIF($6, ''), contact = NULLIF($7, ''), tele = NULLIF($8, ''),
		    instagram = NULLIF($9, ''), facebook = NULLIF($10, ''), whatsapp = NULLIF($11, ''),
		    updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		coop.ID, coop.Nom, coop.Email, coop.Description, coop.Adresse, coop.Image,
		coop.Contact, coop.Tele, coop.Instagram, coop.Facebook, coop.Whatsapp,
		coop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update cooperative: %w", err)
	}
	return nil
}

// Delete elimina una cooperativa; los productos caen por ON DELETE CASCADE.
func (r *CooperativeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cooperatives WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cooperative: %w", err)
	}
	return nil
}

func (r *CooperativeRepo) scanOne(row pgx.Row, op string) (*entity.Cooperative, error) {
	var c entity.Cooperative
	err := row.Scan(
		&c.ID, &c.Nom, &c.Email, &c.Description, &c.Adresse, &c.Image,
		&c.Contact, &c.Tele, &c.Instagram, &c.Facebook, &c.Whatsapp,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CooperativeRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Cooperative, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cooperatives: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cooperative
	for rows.Next() {
		var c entity.Cooperative
		if err := rows.Scan(
			&c.ID, &c.Nom, &c.Email, &c.Description, &c.Adresse, &c.Image,
			&c.Contact, &c.Tele, &c.Instagram, &c.Facebook, &c.Whatsapp,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cooperative: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
