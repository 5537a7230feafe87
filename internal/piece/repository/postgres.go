package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Piece) error {
	query := `
        INSERT INTO pieces (name, size_x, size_y, size_z)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRowxContext(ctx, query, p.Name, p.SizeX, p.SizeY, p.SizeZ).Scan(&p.ID)
}

func (r *PGRepository) FindByID(ctx context.Context, id int) (*model.Piece, error) {
	var piece model.Piece
	query := `SELECT id, name, size_x, size_y, size_z FROM pieces WHERE id = $1`
	err := r.DB.GetContext(ctx, &piece, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &piece, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Piece, error) {
	pieces := []model.Piece{}
	query := `SELECT id, name, size_x, size_y, size_z FROM pieces ORDER BY id`
	if err := r.DB.SelectContext(ctx, &pieces, query); err != nil {
		return nil, err
	}
	return pieces, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Piece) error {
	query := `
        UPDATE pieces
        SET name = $1, size_x = $2, size_y = $3, size_z = $4
        WHERE id = $5
    `
	_, err := r.DB.ExecContext(ctx, query, p.Name, p.SizeX, p.SizeY, p.SizeZ, p.ID)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM pieces WHERE id = $1`, id)
	return err
}

func (r *PGRepository) FindRelatedProducts(ctx context.Context, pieceID int) ([]dto.RelatedProduct, error) {
	related := []dto.RelatedProduct{}
	query := `
        SELECT p.id AS product_id, p.name AS product_name, pp.quantity
        FROM product_pieces pp
        JOIN products p ON p.id = pp.product_id
        WHERE pp.piece_id = $1
        ORDER BY p.id
    `
	if err := r.DB.SelectContext(ctx, &related, query, pieceID); err != nil {
		return nil, err
	}
	return related, nil
}
