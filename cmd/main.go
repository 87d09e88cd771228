package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/driveshare-capital/backend/internal/facades"
	"github.com/driveshare-capital/backend/internal/handlers"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/middlewares"
	"github.com/driveshare-capital/backend/internal/repositories"
	"github.com/driveshare-capital/backend/internal/services"

	_ "github.com/driveshare-capital/backend/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title DriveShare Capital API
// @version 0.1.0
// @description Financial-ledger backend for fractional vehicle-ownership investing: offerings, investments, wallets, monthly rental distributions and exits.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheTTLSecond,
		kafkaBroker, kafkaTopic, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\n", buildVersion)
	fmt.Printf("Commit: %s\n", buildCommit)
	fmt.Printf("Build: %s\n", buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, and logging configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheTTLSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "driveshare")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("BALANCE_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config; the transaction stream is optional and stays off when no
	// broker is configured.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheTTLSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
) error {
	// Initialize logger
	logg, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logg.Sync()
	logg.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logg.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logg.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logg.Fatal("PostgreSQL ping failed:", err)
	}

	if err := repositories.RunMigrations(ctx, db); err != nil {
		logg.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logg.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka transaction stream, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logg.Infof("Kafka transaction stream enabled: %s topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize repositories
	walletWriteRepo := repositories.NewWalletWriteRepository(db, middlewares.GetTxFromContext)
	walletReadRepo := repositories.NewWalletReadRepository(db)
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)
	offeringWriteRepo := repositories.NewOfferingWriteRepository(db, middlewares.GetTxFromContext)
	offeringReadRepo := repositories.NewOfferingReadRepository(db)
	investmentWriteRepo := repositories.NewInvestmentWriteRepository(db, middlewares.GetTxFromContext)
	investmentReadRepo := repositories.NewInvestmentReadRepository(db)
	instalmentWriteRepo := repositories.NewInstalmentWriteRepository(db, middlewares.GetTxFromContext)
	distributionWriteRepo := repositories.NewDistributionWriteRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	orderWriteRepo := repositories.NewSecondaryOrderWriteRepository(db, middlewares.GetTxFromContext)
	orderReadRepo := repositories.NewSecondaryOrderReadRepository(db)
	statsReadRepo := repositories.NewStatsReadRepository(db)
	balanceCacheRepo := repositories.NewWalletBalanceCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Notification sink
	notifier := facades.NewStoreNotifier(notificationWriteRepo)

	// Initialize services
	ledgerService := services.NewLedgerService(walletWriteRepo, walletReadRepo, transactionWriteRepo, balanceCacheRepo, kafkaWriter)
	distributionService := services.NewDistributionService(offeringReadRepo, investmentReadRepo, distributionWriteRepo, ledgerService, notifier)
	investmentService := services.NewInvestmentService(investmentWriteRepo, investmentReadRepo, offeringReadRepo, ledgerService, notifier)
	offeringService := services.NewOfferingService(offeringWriteRepo, offeringReadRepo)
	userService := services.NewUserService(userWriteRepo, userReadRepo, ledgerService)
	walletService := services.NewWalletService(ledgerService, walletReadRepo, instalmentWriteRepo, transactionReadRepo, notifier)
	orderService := services.NewSecondaryOrderService(orderWriteRepo, orderReadRepo, notifier)
	notificationService := services.NewNotificationService(notificationReadRepo)
	overviewService := services.NewOverviewService(statsReadRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	createUserHandler := handlers.NewCreateUserHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	createOfferingHandler := handlers.NewCreateOfferingHandler(offeringService)
	listOfferingsHandler := handlers.NewListOfferingsHandler(offeringService)
	createInvestmentHandler := handlers.NewCreateInvestmentHandler(investmentService)
	listInvestmentsHandler := handlers.NewListInvestmentsHandler(investmentService)
	exitInvestmentHandler := handlers.NewExitInvestmentHandler(investmentService)
	getWalletHandler := handlers.NewGetWalletHandler(walletService)
	topUpHandler := handlers.NewTopUpHandler(walletService)
	listTransactionsHandler := handlers.NewListTransactionsHandler(walletService)
	payInstalmentHandler := handlers.NewPayInstalmentHandler(walletService)
	runDistributionHandler := handlers.NewRunDistributionHandler(distributionService)
	placeOrderHandler := handlers.NewPlaceOrderHandler(orderService)
	orderBookHandler := handlers.NewOrderBookHandler(orderService)
	listNotificationsHandler := handlers.NewListNotificationsHandler(notificationService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logg))

	// Mutating routes run inside a per-request DB transaction.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		handlers.RegisterCreateUserHandler(r, createUserHandler)
		handlers.RegisterCreateOfferingHandler(r, createOfferingHandler)
		handlers.RegisterCreateInvestmentHandler(r, createInvestmentHandler)
		handlers.RegisterExitInvestmentHandler(r, exitInvestmentHandler)
		handlers.RegisterTopUpHandler(r, topUpHandler)
		handlers.RegisterPayInstalmentHandler(r, payInstalmentHandler)
		handlers.RegisterRunDistributionHandler(r, runDistributionHandler)
		handlers.RegisterPlaceOrderHandler(r, placeOrderHandler)
	})

	// Read-only routes
	handlers.RegisterHealthHandler(r, healthHandler)
	handlers.RegisterListUsersHandler(r, listUsersHandler)
	handlers.RegisterListOfferingsHandler(r, listOfferingsHandler)
	handlers.RegisterListInvestmentsHandler(r, listInvestmentsHandler)
	handlers.RegisterGetWalletHandler(r, getWalletHandler)
	handlers.RegisterListTransactionsHandler(r, listTransactionsHandler)
	handlers.RegisterOrderBookHandler(r, orderBookHandler)
	handlers.RegisterListNotificationsHandler(r, listNotificationsHandler)
	handlers.RegisterOverviewHandler(r, overviewHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logg.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logg.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorw("HTTP server shutdown error", "error", err)
	}

	logg.Info("HTTP server stopped gracefully")
	return nil
}
