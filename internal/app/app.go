package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/shopmate-vn/go-backend/internal/cfg"
	v1Http "github.com/shopmate-vn/go-backend/internal/delivery/v1/http"
	"github.com/shopmate-vn/go-backend/internal/infrastructure/gemini"
	"github.com/shopmate-vn/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/shopmate-vn/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/shopmate-vn/go-backend/internal/repository/minio"
	"github.com/shopmate-vn/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/shopmate-vn/go-backend/internal/repository/pgdb/converter"
	"github.com/shopmate-vn/go-backend/internal/repository/redis"
	redisConv "github.com/shopmate-vn/go-backend/internal/repository/redis/converter"
	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/clients"
	"github.com/shopmate-vn/go-backend/pkg/closer"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
	"github.com/shopmate-vn/go-backend/pkg/postgres"
	"github.com/shopmate-vn/go-backend/pkg/tr"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	cartConv := pgdbConv.NewCartConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	cpConv := pgdbConv.NewCartProductConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	itemConv := redisConv.NewCartItemConverterImpl()

	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	cartProductRepo := pgdb.NewCartProductRepo(db.Pool, cpConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, itemConv, cfg.Redis, logger)

	textGen := gemini.NewClient(cfg.Gemini, logger)

	// Root context for background workers; cancelled once shutdown starts.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, appCtx)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(appCtx)

	transactor := tr.NewPgTransactor(db.Pool)

	cartUC := usecase.NewCartUC(
		cartRepo,
		productRepo,
		cartProductRepo,
		outboxRepo,
		cacheRepo,
		textGen,
		transactor,
		logger,
	)

	productUC := usecase.NewProductUC(
		productRepo,
		cartRepo,
		cartProductRepo,
		outboxRepo,
		cacheRepo,
		imagesInfra,
		transactor,
		logger,
	)

	userUC := usecase.NewUserUC(userRepo, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(cartUC, productUC, userUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	appCancel()
	outboxWorker.Stop()

	done := make(chan error, 1)
	go func() {
		done <- imagesInfra.WaitForCleanup(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Warnf("MinIO cleanup error: %v", err)
		} else {
			logger.Infof("MinIO cleanup completed")
		}
	case <-time.After(5 * time.Second):
		logger.Warnf("MinIO cleanup did not finish before shutdown, some temporary objects may remain")
	}

	// Remaining resources close in LIFO order: producer first, then redis,
	// then the pool everything else depends on.
	c := closer.NewCloser(2 * time.Second)
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := c.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
