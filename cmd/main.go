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

	clientsHandler "psyscheduler/internal/api/handlers/clients"
	createAdminAppointmentHandler "psyscheduler/internal/api/handlers/create_admin_appointment"
	createAppointmentHandler "psyscheduler/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "psyscheduler/internal/api/handlers/delete_appointment"
	getAppointmentHandler "psyscheduler/internal/api/handlers/get_appointment"
	getAvailableDaysHandler "psyscheduler/internal/api/handlers/get_available_days"
	getCalendarHandler "psyscheduler/internal/api/handlers/get_calendar"
	getDayScheduleHandler "psyscheduler/internal/api/handlers/get_day_schedule"
	listAppointmentsHandler "psyscheduler/internal/api/handlers/list_appointments"
	nonWorkingDaysHandler "psyscheduler/internal/api/handlers/non_working_days"
	servicesHandler "psyscheduler/internal/api/handlers/services"
	supportRequestsHandler "psyscheduler/internal/api/handlers/support_requests"
	updateAppointmentHandler "psyscheduler/internal/api/handlers/update_appointment"
	workingScheduleHandler "psyscheduler/internal/api/handlers/working_schedule"
	"psyscheduler/internal/api/middleware"
	"psyscheduler/internal/config"
	"psyscheduler/internal/domain"
	appointmentRepo "psyscheduler/internal/infra/storage/appointment"
	catalogRepo "psyscheduler/internal/infra/storage/catalog"
	clientRepo "psyscheduler/internal/infra/storage/client"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	supportRepo "psyscheduler/internal/infra/storage/support"
	appointmentsService "psyscheduler/internal/service/appointments"
	catalogService "psyscheduler/internal/service/catalog"
	clientsService "psyscheduler/internal/service/clients"
	scheduleService "psyscheduler/internal/service/schedule"
	supportService "psyscheduler/internal/service/support"
	createAdminAppointmentUC "psyscheduler/internal/usecase/create_admin_appointment"
	createAppointmentUC "psyscheduler/internal/usecase/create_appointment"
	getAvailableDaysUC "psyscheduler/internal/usecase/get_available_days"
	getDayScheduleUC "psyscheduler/internal/usecase/get_day_schedule"
	"psyscheduler/pkg/dbmetrics"
	"psyscheduler/pkg/logger"
	"psyscheduler/pkg/metrics"
	"psyscheduler/pkg/simpletxmanager"
	"psyscheduler/pkg/txmanager"
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

	log.Info("Starting psyscheduler...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		catalogRepository     *catalogRepo.Repository
		clientRepository      *clientRepo.Repository
		supportRepository     *supportRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		supportRepository = supportRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		supportRepository = supportRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		scheduleRepository,
		clientRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	supportSvc := supportService.NewService(supportRepository, clientRepository, log)

	// Инициализируем use cases
	bufferMinutes := cfg.Booking.BufferMinutes
	if bufferMinutes == 0 {
		bufferMinutes = domain.DefaultBufferMinutes
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		clientRepository,
		txMgr,
		bufferMinutes,
		log,
	)

	createAdminAppointmentUseCase := createAdminAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		clientRepository,
		txMgr,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		bufferMinutes,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createAdminAppointment := createAdminAppointmentHandler.NewHandler(createAdminAppointmentUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	workingSchedule := workingScheduleHandler.NewHandler(scheduleSvc, log)
	nonWorkingDays := nonWorkingDaysHandler.NewHandler(scheduleSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	clients := clientsHandler.NewHandler(clientsSvc, log)
	supportRequests := supportRequestsHandler.NewHandler(supportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	// Следующий свободный слот дня
	api.HandleFunc("/schedule/day", getDaySchedule.Handle).Methods(http.MethodGet)

	// Дни, на которые еще можно записаться
	api.HandleFunc("/schedule/available-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", services.HandleGet).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на консультации ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Создание записи администратором с явным интервалом
	protected.HandleFunc("/admin/appointments", createAdminAppointment.Handle).Methods(http.MethodPost)

	// Недельный календарь
	protected.HandleFunc("/schedule/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Рабочее расписание ---
	protected.HandleFunc("/schedule/rules", workingSchedule.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/rules/{id}", workingSchedule.HandleUpdate).Methods(http.MethodPut)

	// --- Нерабочие дни ---
	protected.HandleFunc("/schedule/non-working-days", nonWorkingDays.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/non-working-days", nonWorkingDays.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/non-working-days/{id}", nonWorkingDays.HandleDelete).Methods(http.MethodDelete)

	// --- Каталог услуг (управление) ---
	protected.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", services.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/services/{id}", services.HandleDelete).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/clients", clients.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients", clients.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", clients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", clients.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{id}", clients.HandleDelete).Methods(http.MethodDelete)

	// --- Поддержка ---
	protected.HandleFunc("/support-requests", supportRequests.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/support-requests", supportRequests.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/support-requests/{id}", supportRequests.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/support-requests/{id}/status", supportRequests.HandleUpdateStatus).Methods(http.MethodPatch)

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
