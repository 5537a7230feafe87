package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/product"
	"github.com/IgorBayerl/garden-erp/internal/product/dto"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// foreignKeyViolation is the PostgreSQL error code raised when a BOM line
// references a piece id that does not exist.
const foreignKeyViolation = "23503"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `INSERT INTO products (name, image) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRowxContext(ctx, query, p.Name, p.Image).Scan(&p.ID); err != nil {
			return err
		}
		return insertLines(ctx, tx, p)
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	query := `SELECT id, name, image FROM products WHERE id = $1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Pieces = lines
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	// Newest products first, matching the catalog listing order.
	query := `SELECT id, name, image FROM products ORDER BY id DESC`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}

	for i := range products {
		lines, err := r.findLines(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].Pieces = lines
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `UPDATE products SET name = $1, image = $2 WHERE id = $3`
		if _, err := tx.ExecContext(ctx, query, p.Name, p.Image, p.ID); err != nil {
			return err
		}
		// BOM lines are replaced wholesale on update.
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_pieces WHERE product_id = $1`, p.ID); err != nil {
			return err
		}
		return insertLines(ctx, tx, p)
	})
}

func (r *PGRepository) Delete(ctx context.Context, id int) error {
	// product_pieces rows go with the product (ON DELETE CASCADE).
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PGRepository) RegisterWithPieces(ctx context.Context, name string, image *string, lines []dto.PieceLine) (*model.Product, error) {
	p := &model.Product{Name: name, Image: image}

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `INSERT INTO products (name, image) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRowxContext(ctx, query, p.Name, p.Image).Scan(&p.ID); err != nil {
			return err
		}

		for _, line := range lines {
			pieceID, err := getOrCreatePiece(ctx, tx, line)
			if err != nil {
				return err
			}
			lineQuery := `INSERT INTO product_pieces (product_id, piece_id, quantity) VALUES ($1, $2, $3)`
			if _, err := tx.ExecContext(ctx, lineQuery, p.ID, pieceID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, p.ID)
}

func (r *PGRepository) findLines(ctx context.Context, productID int) ([]model.ProductPiece, error) {
	type lineRow struct {
		ID       int    `db:"id"`
		PieceID  int    `db:"piece_id"`
		Quantity int    `db:"quantity"`
		Name     string `db:"name"`
		SizeX    int    `db:"size_x"`
		SizeY    int    `db:"size_y"`
		SizeZ    int    `db:"size_z"`
	}

	rows := []lineRow{}
	query := `
        SELECT pp.id, pp.piece_id, pp.quantity, pc.name, pc.size_x, pc.size_y, pc.size_z
        FROM product_pieces pp
        JOIN pieces pc ON pc.id = pp.piece_id
        WHERE pp.product_id = $1
        ORDER BY pp.id
    `
	if err := r.DB.SelectContext(ctx, &rows, query, productID); err != nil {
		return nil, err
	}

	lines := make([]model.ProductPiece, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, model.ProductPiece{
			ID:        row.ID,
			ProductID: productID,
			PieceID:   row.PieceID,
			Quantity:  row.Quantity,
			Piece: model.Piece{
				ID:    row.PieceID,
				Name:  row.Name,
				SizeX: row.SizeX,
				SizeY: row.SizeY,
				SizeZ: row.SizeZ,
			},
		})
	}
	return lines, nil
}

func (r *PGRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertLines(ctx context.Context, tx *sqlx.Tx, p *model.Product) error {
	query := `INSERT INTO product_pieces (product_id, piece_id, quantity) VALUES ($1, $2, $3) RETURNING id`
	for i := range p.Pieces {
		line := &p.Pieces[i]
		line.ProductID = p.ID
		err := tx.QueryRowxContext(ctx, query, p.ID, line.PieceID, line.Quantity).Scan(&line.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
				return fmt.Errorf("%w: piece_id %d", product.ErrUnknownPiece, line.PieceID)
			}
			return err
		}
	}
	return nil
}

func getOrCreatePiece(ctx context.Context, tx *sqlx.Tx, line dto.PieceLine) (int, error) {
	var id int
	query := `
        SELECT id FROM pieces
        WHERE name = $1 AND size_x = $2 AND size_y = $3 AND size_z = $4
        LIMIT 1
    `
	err := tx.GetContext(ctx, &id, query, line.Name, line.SizeX, line.SizeY, line.SizeZ)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	insert := `INSERT INTO pieces (name, size_x, size_y, size_z) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowxContext(ctx, insert, line.Name, line.SizeX, line.SizeY, line.SizeZ).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
