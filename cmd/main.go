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

	cancelReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_reservation"
	checkCapacityHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/check_capacity"
	createExceptionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_exception"
	createReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_reservation"
	deleteExceptionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_exception"
	estimateDurationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/estimate_duration"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getCustomerReservationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_reservation"
	getSalonConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_salon_config"
	getSalonReservationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_salon_reservations"
	listExceptionsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_exceptions"
	updateReservationStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_reservation_status"
	updateSalonConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_salon_config"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	exceptionRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/exception"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	customerServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/customerservice"
	salonDirectoryClient "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	configService "github.com/m04kA/SMC-SalonService/internal/service/config"
	reservationsService "github.com/m04kA/SMC-SalonService/internal/service/reservations"
	checkCapacityUC "github.com/m04kA/SMC-SalonService/internal/usecase/check_capacity"
	createReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	estimateDurationUC "github.com/m04kA/SMC-SalonService/internal/usecase/estimate_duration"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

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
	directoryClient := salonDirectoryClient.NewClient(
		cfg.SalonDirectory.URL,
		time.Duration(cfg.SalonDirectory.Timeout)*time.Second,
		log,
	)
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SalonDirectory=%s timeout=%ds, CustomerService=%s timeout=%ds)",
		cfg.SalonDirectory.URL, cfg.SalonDirectory.Timeout, cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		exceptionRepository   *exceptionRepo.Repository
		configRepository      *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		exceptionRepository = exceptionRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		exceptionRepository = exceptionRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		directoryClient,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		exceptionRepository,
		directoryClient,
		log,
	)

	// Инициализируем use cases
	estimateDurationUseCase := estimateDurationUC.NewUseCase(directoryClient, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		exceptionRepository,
		configRepository,
		directoryClient,
		log,
	)

	checkCapacityUseCase := checkCapacityUC.NewUseCase(
		reservationRepository,
		configRepository,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		exceptionRepository,
		configRepository,
		directoryClient,
		customerClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	estimateDuration := estimateDurationHandler.NewHandler(estimateDurationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkCapacity := checkCapacityHandler.NewHandler(checkCapacityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	getSalonReservations := getSalonReservationsHandler.NewHandler(reservationsSvc, log)
	getSalonConfig := getSalonConfigHandler.NewHandler(configSvc, log)
	updateSalonConfig := updateSalonConfigHandler.NewHandler(configSvc, log)
	createException := createExceptionHandler.NewHandler(configSvc, log)
	listExceptions := listExceptionsHandler.NewHandler(configSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(configSvc, log)

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

	// Оценка суммарной длительности выбранных услуг
	api.HandleFunc("/salons/{salonId}/duration-estimate",
		estimateDuration.Handle).Methods(http.MethodPost)

	// Получение доступных окон для бронирования
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка загрузки салона в окне времени
	api.HandleFunc("/salons/{salonId}/capacity",
		checkCapacity.Handle).Methods(http.MethodGet)

	// Получение конфигурации бронирования салона
	api.HandleFunc("/salons/{salonId}/config",
		getSalonConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (для менеджеров)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/reservations", getSalonReservations.Handle).Methods(http.MethodGet)

	// Обновление конфигурации салона
	protected.HandleFunc("/salons/{salonId}/config", updateSalonConfig.HandleUpdate).Methods(http.MethodPut)

	// Сброс конфигурации салона к дефолтным значениям
	protected.HandleFunc("/salons/{salonId}/config", updateSalonConfig.HandleReset).Methods(http.MethodDelete)

	// Календарь исключений
	protected.HandleFunc("/salons/{salonId}/exceptions", createException.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/exceptions", listExceptions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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
