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
	"github.com/segmentio/kafka-go"

	"github.com/tum-cit/memo-bench/internal/handlers"
	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/middlewares"
	"github.com/tum-cit/memo-bench/internal/migrations"
	"github.com/tum-cit/memo-bench/internal/repositories"
	"github.com/tum-cit/memo-bench/internal/seed"
	"github.com/tum-cit/memo-bench/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title memo-bench API
// @version 1.0.0
// @description Crowdsourcing backend for competency benchmark datasets
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath, runSeed := parseFlags()

	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		runSeed,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether to seed the database and exit.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	s := flag.Bool("seed", false, "Apply migrations, insert seed data and exit")
	flag.Parse()
	return *c, *s
}

// parseConfig loads environment variables from a file and returns
// all application, database, Kafka and logging configuration.
func parseConfig(path string) (
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
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
	appEnv = getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "memobench")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config, optional. Contribution events are skipped when empty.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "contribution-events")

	return
}

// run initializes the logger, database, migrations, Kafka publisher and
// HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	runSeed bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply pending migrations. Failure is fatal in production-like
	// environments and a warning in development.
	if err := migrations.Up(db); err != nil {
		if appEnv == "production" || appEnv == "staging" {
			logger.Log.Errorw("migrations failed", "env", appEnv, "error", err)
			return err
		}
		logger.Log.Warnw("migrations failed, continuing", "env", appEnv, "error", err)
	}

	// Initialize Kafka publisher for contribution events
	var kafkaWriter *kafka.Writer
	var publisher *services.ContributionPublisher
	if kafkaAddr != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		publisher = services.NewContributionPublisher(kafkaWriter)
		logger.Log.Infof("Contribution events enabled, topic %s", kafkaTopic)
	} else {
		publisher = services.NewContributionPublisher(nil)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	competencyRepo := repositories.NewCompetencyRepository(db, middlewares.GetTxFromContext)
	resourceRepo := repositories.NewLearningResourceRepository(db, middlewares.GetTxFromContext)
	relationshipRepo := repositories.NewRelationshipRepository(db, middlewares.GetTxFromContext)
	linkRepo := repositories.NewResourceLinkRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	userService := services.NewUserService(userRepo)
	competencyService := services.NewCompetencyService(competencyRepo)
	resourceService := services.NewLearningResourceService(resourceRepo)
	relationshipService := services.NewRelationshipService(relationshipRepo, publisher)
	linkService := services.NewResourceLinkService(linkRepo, publisher)

	if runSeed {
		seeder := seed.NewSeeder(userService, competencyService, resourceService)
		if err := seeder.Run(ctx); err != nil {
			logger.Log.Errorw("seeding failed", "error", err)
			return err
		}
		return nil
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(api chi.Router) {
		// Reads run outside a transaction
		api.Get("/users", handlers.NewListUsersHandler(userService))
		api.Get("/users/by-email", handlers.NewGetUserByEmailHandler(userService))
		api.Get("/users/{id}", handlers.NewGetUserHandler(userService))

		api.Get("/competencies", handlers.NewListCompetenciesHandler(competencyService))
		api.Get("/competencies/random", handlers.NewRandomCompetenciesHandler(competencyService))
		api.Get("/competencies/{id}", handlers.NewGetCompetencyHandler(competencyService))

		api.Get("/learning-resources", handlers.NewListLearningResourcesHandler(resourceService))
		api.Get("/learning-resources/by-url", handlers.NewGetLearningResourceByURLHandler(resourceService))
		api.Get("/learning-resources/random", handlers.NewRandomLearningResourcesHandler(resourceService))
		api.Get("/learning-resources/{id}", handlers.NewGetLearningResourceHandler(resourceService))

		api.Get("/competency-relationships", handlers.NewListRelationshipsHandler(relationshipService))
		api.Get("/competency-relationships/by-origin/{id}", handlers.NewRelationshipsByOriginHandler(relationshipService))
		api.Get("/competency-relationships/by-destination/{id}", handlers.NewRelationshipsByDestinationHandler(relationshipService))
		api.Get("/competency-relationships/{id}", handlers.NewGetRelationshipHandler(relationshipService))

		api.Get("/competency-resource-links", handlers.NewListResourceLinksHandler(linkService))
		api.Get("/competency-resource-links/by-competency/{id}", handlers.NewResourceLinksByCompetencyHandler(linkService))
		api.Get("/competency-resource-links/by-resource/{id}", handlers.NewResourceLinksByResourceHandler(linkService))
		api.Get("/competency-resource-links/{id}", handlers.NewGetResourceLinkHandler(linkService))

		// Writes run inside a per-request transaction
		api.Group(func(w chi.Router) {
			w.Use(middlewares.TxMiddleware(db))

			w.Post("/users", handlers.NewCreateUserHandler(userService))
			w.Put("/users/{id}", handlers.NewUpdateUserHandler(userService))
			w.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))

			w.Post("/competencies", handlers.NewCreateCompetencyHandler(competencyService))
			w.Put("/competencies/{id}", handlers.NewUpdateCompetencyHandler(competencyService))
			w.Delete("/competencies/{id}", handlers.NewDeleteCompetencyHandler(competencyService))

			w.Post("/learning-resources", handlers.NewCreateLearningResourceHandler(resourceService))
			w.Put("/learning-resources/{id}", handlers.NewUpdateLearningResourceHandler(resourceService))
			w.Delete("/learning-resources/{id}", handlers.NewDeleteLearningResourceHandler(resourceService))

			w.Post("/competency-relationships", handlers.NewCreateRelationshipHandler(relationshipService))
			w.Delete("/competency-relationships/{id}", handlers.NewDeleteRelationshipHandler(relationshipService))

			w.Post("/competency-resource-links", handlers.NewCreateResourceLinkHandler(linkService))
			w.Delete("/competency-resource-links/{id}", handlers.NewDeleteResourceLinkHandler(linkService))
		})
	})

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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
