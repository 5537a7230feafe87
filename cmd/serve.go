package cmd

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IgorBayerl/garden-erp/config"
	orderhandler "github.com/IgorBayerl/garden-erp/internal/order/handler"
	orderusecase "github.com/IgorBayerl/garden-erp/internal/order/usecase"
	piecehandler "github.com/IgorBayerl/garden-erp/internal/piece/handler"
	piecerepo "github.com/IgorBayerl/garden-erp/internal/piece/repository"
	pieceusecase "github.com/IgorBayerl/garden-erp/internal/piece/usecase"
	producthandler "github.com/IgorBayerl/garden-erp/internal/product/handler"
	productrepo "github.com/IgorBayerl/garden-erp/internal/product/repository"
	productusecase "github.com/IgorBayerl/garden-erp/internal/product/usecase"
	"github.com/IgorBayerl/garden-erp/internal/server"
	"github.com/IgorBayerl/garden-erp/pkg/cache"
	"github.com/IgorBayerl/garden-erp/pkg/database/postgres"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := loadConfig()
		defer func() { _ = log.Sync() }()

		if servePort != "" {
			cfg.Server.HTTPPort = servePort
		}

		db, err := connectPostgres(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		// Redis only caches catalog listings. Failing to reach it degrades
		// to uncached reads instead of refusing to start.
		var redisClient *cache.RedisClient
		if cfg.Redis.Enabled {
			redisClient, err = cache.NewRedisClient(&cache.Config{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				log.Warn("redis unavailable, caching disabled", zap.Error(err))
				redisClient = nil
			} else {
				defer redisClient.Close()
			}
		}

		pieceRepository := piecerepo.NewPGRepository(db)
		productRepository := productrepo.NewPGRepository(db)

		pieceUC := pieceusecase.NewPieceUseCase(pieceRepository, redisClient, cfg.Redis.TTL, log)
		productUC := productusecase.NewProductUseCase(productRepository, redisClient, cfg.Redis.TTL, log)
		orderUC := orderusecase.NewOrderUseCase(productRepository, log)

		router := server.NewRouter(server.Handlers{
			Pieces:   piecehandler.NewPieceHandler(pieceUC, log),
			Products: producthandler.NewProductHandler(productUC, log),
			Orders:   orderhandler.NewOrderHandler(orderUC, log),
		}, db, log)

		return server.New(cfg.Server, router, log).Run()
	},
}

func connectPostgres(cfg *config.Config) (*sqlx.DB, error) {
	return postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port to listen on (overrides HTTP_PORT)")
	rootCmd.AddCommand(serveCmd)
}
