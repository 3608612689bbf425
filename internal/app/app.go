package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/pos-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/pos-backend/internal/delivery/v1/http"
	advisorInfra "github.com/DRSN-tech/pos-backend/internal/infrastructure/advisor"
	"github.com/DRSN-tech/pos-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/pos-backend/internal/infrastructure/parser"
	receiptsInfra "github.com/DRSN-tech/pos-backend/internal/infrastructure/receipts"
	s3Repo "github.com/DRSN-tech/pos-backend/internal/repository/minio"
	"github.com/DRSN-tech/pos-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/pos-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pos-backend/internal/repository/redis"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/clients"
	"github.com/DRSN-tech/pos-backend/pkg/closer"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/DRSN-tech/pos-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	resources := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	trConv := pgdbConv.NewTransactionConverterImpl()
	obConv := pgdbConv.NewOutboxEventConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	transactionRepo := pgdb.NewTransactionRepo(db.Pool, trConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, obConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, cfg.Redis, log)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	receiptRepo := s3Repo.NewReceiptRepo(minioClient, cfg.Minio)

	// Контекст фоновых задач живёт дольше запросов и гасится при остановке
	shutdownCtx, shutdownCancelBg := context.WithCancel(context.Background())
	defer shutdownCancelBg()

	receipts := receiptsInfra.NewReceiptsInfrastructure(receiptRepo, log, shutdownCtx)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	worker.Start(shutdownCtx)

	advisorClient := advisorInfra.NewOpenRouterClient(cfg.Advisor, log)
	priceListParser := parser.NewExcelParser()

	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, priceListParser, log)
	checkoutUC := usecase.NewCheckoutUC(productRepo, transactionRepo, outboxRepo, db.Pool, cacheRepo, receipts, log)
	reportUC := usecase.NewReportUC(productRepo, transactionRepo, cacheRepo, log)
	advisorUC := usecase.NewAdvisorUC(reportUC, advisorClient, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, checkoutUC, reportUC, advisorUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := httpSrv.Stop(stopCtx); err != nil {
		log.Errorf(err, "HTTP server shutdown error")
	} else {
		log.Infof("HTTP server stopped")
	}

	done := make(chan error, 1)
	go func() {
		done <- receipts.WaitForUploads(stopCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warnf("receipt archive error: %v", err)
		} else {
			log.Infof("receipt uploads completed")
		}
	case <-time.After(5 * time.Second):
		log.Warnf("receipt uploads did not finish before shutdown, some receipts may be lost")
	}

	shutdownCancelBg()
	worker.Stop()

	if err := resources.Close(stopCtx); err != nil {
		log.Warnf("resource close error: %v", err)
	}

	log.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
