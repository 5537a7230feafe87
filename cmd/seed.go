package cmd

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IgorBayerl/garden-erp/internal/model"
	productrepo "github.com/IgorBayerl/garden-erp/internal/product/repository"
)

//go:embed schema.sql
var schemaSQL string

type seedPiece struct {
	name    string
	x, y, z int
}

type seedLine struct {
	piece string
	qty   int
}

type seedProduct struct {
	name  string
	lines []seedLine
}

// Sample catalog: the picnic furniture line the workshop actually makes.
var seedPieces = []seedPiece{
	{"Pé Piquenique", 743, 78, 35},
	{"Travessa Assento", 1080, 78, 35},
	{"Ripa Assento", 1100, 68, 28},
	{"Ripa Tampo", 1100, 90, 28},
	{"Travessa Tampo", 640, 78, 35},
	{"Apoio Central", 1540, 78, 35},
}

var seedProducts = []seedProduct{
	{
		name: "Mesa 757 Piquenique",
		lines: []seedLine{
			{"Pé Piquenique", 4},
			{"Travessa Tampo", 2},
			{"Ripa Tampo", 7},
			{"Apoio Central", 1},
		},
	},
	{
		name: "Banco Piquenique",
		lines: []seedLine{
			{"Pé Piquenique", 4},
			{"Travessa Assento", 2},
			{"Ripa Assento", 3},
		},
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load the sample catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := loadConfig()
		defer func() { _ = log.Sync() }()

		db, err := connectPostgres(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		if err := seedCatalog(ctx, db); err != nil {
			return err
		}
		log.Info("seed complete",
			zap.Int("pieces", len(seedPieces)),
			zap.Int("products", len(seedProducts)),
		)
		return nil
	},
}

// seedCatalog inserts the sample pieces and products. Idempotent: an
// already populated catalog is left alone.
func seedCatalog(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"); err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	pieceIDs := map[string]int{}
	for _, p := range seedPieces {
		var id int
		err := db.QueryRowxContext(ctx,
			"INSERT INTO pieces (name, size_x, size_y, size_z) VALUES ($1, $2, $3, $4) RETURNING id",
			p.name, p.x, p.y, p.z,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed piece %q: %w", p.name, err)
		}
		pieceIDs[p.name] = id
	}

	repo := productrepo.NewPGRepository(db)
	for _, sp := range seedProducts {
		product := &model.Product{Name: sp.name}
		for _, line := range sp.lines {
			product.Pieces = append(product.Pieces, model.ProductPiece{
				PieceID:  pieceIDs[line.piece],
				Quantity: line.qty,
			})
		}
		if err := repo.Create(ctx, product); err != nil {
			return fmt.Errorf("seed product %q: %w", sp.name, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
