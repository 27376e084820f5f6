package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	createBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_booking"
	createPatternHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_pattern"
	generateSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/generate_slots"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getBookingTypeHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking_type"
	getFreeSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_free_slots"
	getGenerationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_generation"
	getUserBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_user_bookings"
	listBookingTypesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_booking_types"
	listGenerationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_generations"
	listPatternsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_patterns"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	bookingTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	generationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/generation"
	patternRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/pattern"
	slotTimeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
	pagesServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/pagesservice"
	userServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	bookingTypesService "github.com/m04kA/SMC-ReservationService/internal/service/bookingtypes"
	generationsService "github.com/m04kA/SMC-ReservationService/internal/service/generations"
	patternsService "github.com/m04kA/SMC-ReservationService/internal/service/patterns"
	createBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/generate_slots"
	getFreeSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона, в которой шаблоны слотов разворачиваются в конкретные даты
	location, err := time.LoadLocation(cfg.Service.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Service.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	pagesClient := pagesServiceClient.NewClient(
		cfg.PagesService.URL,
		cfg.PagesService.FallbackURL,
		time.Duration(cfg.PagesService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, PagesService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.PagesService.URL, cfg.PagesService.Timeout)

	// Инициализируем notifier (если включен)
	var notifierClient *notifier.Notifier
	var amqpConn *amqp091.Connection

	if cfg.Notifier.Enabled {
		amqpConn, err = amqp091.Dial(cfg.Notifier.URL)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpConn.Close()

		notifierClient, err = notifier.New(amqpConn, cfg.Notifier.Queue, log)
		if err != nil {
			log.Fatal("Failed to initialize notifier: %v", err)
		}
		defer notifierClient.Close()

		log.Info("Notifier initialized (queue=%s)", cfg.Notifier.Queue)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		bookingTypeRepository *bookingTypeRepo.Repository
		patternRepository     *patternRepo.Repository
		generationRepository  *generationRepo.Repository
		slotTimeRepository    *slotTimeRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		bookingTypeRepository = bookingTypeRepo.NewRepository(wrappedDB)
		patternRepository = patternRepo.NewRepository(wrappedDB)
		generationRepository = generationRepo.NewRepository(wrappedDB)
		slotTimeRepository = slotTimeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		bookingTypeRepository = bookingTypeRepo.NewRepository(db)
		patternRepository = patternRepo.NewRepository(db)
		generationRepository = generationRepo.NewRepository(db)
		slotTimeRepository = slotTimeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotTimeRepository,
		log,
	)
	bookingTypeSvc := bookingTypesService.NewService(bookingTypeRepository, log)
	patternSvc := patternsService.NewService(
		patternRepository,
		bookingTypeRepository,
		userClient,
		log,
	)
	generationSvc := generationsService.NewService(
		generationRepository,
		slotTimeRepository,
		bookingTypeRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		bookingTypeRepository,
		patternRepository,
		generationRepository,
		slotTimeRepository,
		userClient,
		location,
		log,
	)

	var notifierForUC createBookingUC.Notifier
	if notifierClient != nil {
		notifierForUC = notifierClient
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		slotTimeRepository,
		bookingRepository,
		bookingTypeRepository,
		userClient,
		notifierForUC,
		txMgr,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		bookingTypeRepository,
		slotTimeRepository,
		pagesClient,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookingTypes := listBookingTypesHandler.NewHandler(bookingTypeSvc, log)
	getBookingType := getBookingTypeHandler.NewHandler(bookingTypeSvc, log)
	createPattern := createPatternHandler.NewHandler(patternSvc, log)
	listPatterns := listPatternsHandler.NewHandler(patternSvc, log)
	getGeneration := getGenerationHandler.NewHandler(generationSvc, log)
	listGenerations := listGenerationsHandler.NewHandler(generationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог типов бронирования
	api.HandleFunc("/booking-types", listBookingTypes.Handle).Methods(http.MethodGet)

	// Свободные слоты типа бронирования (до маршрута {slug}, иначе mux
	// сматчит free-slots как slug)
	api.HandleFunc("/booking-types/{slug}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Шаблоны слотов типа бронирования
	api.HandleFunc("/booking-types/{bookingTypeId:[0-9]+}/patterns", listPatterns.Handle).Methods(http.MethodGet)

	// Детали типа бронирования
	api.HandleFunc("/booking-types/{slug}", getBookingType.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Генерация слотов (для операторов) ---
	protected.HandleFunc("/booking-types/{bookingTypeId:[0-9]+}/generations", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-types/{bookingTypeId:[0-9]+}/generations", listGenerations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/generations/{generationId:[0-9]+}", getGeneration.Handle).Methods(http.MethodGet)

	// --- Шаблоны слотов (для операторов) ---
	protected.HandleFunc("/booking-types/{bookingTypeId:[0-9]+}/patterns", createPattern.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание бронирования (захват слота)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
