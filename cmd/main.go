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

	cancelBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_booking"
	consumeHoldHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/consume_hold"
	createHoldHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_hold"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_business_hours"
	getClientBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_client_bookings"
	getServiceHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_service"
	getStaffBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_staff_bookings"
	getStaffScheduleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_staff_schedule"
	listServicesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_services"
	releaseHoldHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/release_hold"
	renewHoldHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/renew_hold"
	resolveOverlapsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/resolve_overlaps"
	setDayEnabledHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/set_day_enabled"
	updateBookingStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_booking_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_business_hours"
	updateStaffScheduleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_staff_schedule"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	hoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	holdRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/hold"
	serviceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/service"
	scheduleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/staffschedule"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	holdsService "github.com/m04kA/SMC-ReservationService/internal/service/holds"
	hoursService "github.com/m04kA/SMC-ReservationService/internal/service/hours"
	scheduleService "github.com/m04kA/SMC-ReservationService/internal/service/schedule"
	servicesService "github.com/m04kA/SMC-ReservationService/internal/service/services"
	consumeHoldUC "github.com/m04kA/SMC-ReservationService/internal/usecase/consume_hold"
	createHoldUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_hold"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	resolveOverlapsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_overlaps"
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
		bookingRepository  *bookingRepo.Repository
		holdRepository     *holdRepo.Repository
		hoursRepository    *hoursRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		serviceRepository  *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		holdRepository = holdRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		holdRepository = holdRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	holdSvc := holdsService.NewService(holdRepository, cfg.Holds.TTLMinutes, log)
	hoursSvc := hoursService.NewService(hoursRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, hoursRepository, txMgr, log)
	catalogSvc := servicesService.NewService(serviceRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		holdRepository,
		hoursRepository,
		scheduleRepository,
		serviceRepository,
		cfg.Slots.GranularityMinutes,
		log,
	)
	createHoldUseCase := createHoldUC.NewUseCase(
		holdRepository,
		bookingRepository,
		txMgr,
		cfg.Holds.TTLMinutes,
		log,
	)
	consumeHoldUseCase := consumeHoldUC.NewUseCase(
		holdRepository,
		bookingRepository,
		serviceRepository,
		txMgr,
		log,
	)
	resolveOverlapsUseCase := resolveOverlapsUC.NewUseCase(log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	renewHold := renewHoldHandler.NewHandler(holdSvc, log)
	releaseHold := releaseHoldHandler.NewHandler(holdSvc, log)
	consumeHold := consumeHoldHandler.NewHandler(consumeHoldUseCase, log)
	resolveOverlaps := resolveOverlapsHandler.NewHandler(resolveOverlapsUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(scheduleSvc, log)
	updateStaffSchedule := updateStaffScheduleHandler.NewHandler(scheduleSvc, log)
	setDayEnabled := setDayEnabledHandler.NewHandler(scheduleSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)

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

	// Доступные слоты для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Рабочие часы салона
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Недельное расписание мастера
	api.HandleFunc("/staff/{staffId}/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)

	// Временные удержания слотов (владение подтверждается owner token)
	api.HandleFunc("/holds", createHold.Handle).Methods(http.MethodPost)
	api.HandleFunc("/holds/{holdId}/renew", renewHold.Handle).Methods(http.MethodPost)
	api.HandleFunc("/holds/{holdId}/release", releaseHold.Handle).Methods(http.MethodPost)

	// Раскладка календаря
	api.HandleFunc("/calendar/layout", resolveOverlaps.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Превращение hold'а в бронирование
	protected.HandleFunc("/holds/{holdId}/consume", consumeHold.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписаниями (для администраторов) ---
	protected.HandleFunc("/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/schedule", updateStaffSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/schedule/{weekday}", setDayEnabled.Handle).Methods(http.MethodPatch)

	// Фоновая очистка истёкших hold'ов. Истечение ленивое (читатели сами
	// отфильтровывают истёкшие строки), поэтому reaper - только гигиена
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()

	if cfg.Holds.ReaperIntervalSeconds > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Holds.ReaperIntervalSeconds) * time.Second)
			defer ticker.Stop()

			for {
				select {
				case <-reaperCtx.Done():
					return
				case <-ticker.C:
					if _, err := holdSvc.Reap(reaperCtx); err != nil {
						log.Error("Hold reaper failed: %v", err)
					}
				}
			}
		}()
		log.Info("Hold reaper started (interval=%ds)", cfg.Holds.ReaperIntervalSeconds)
	}

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

	// Останавливаем reaper
	stopReaper()

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
