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

	adminLoginHandler "github.com/osteosalud/booking-service/internal/api/handlers/admin_login"
	cancelBookingHandler "github.com/osteosalud/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/osteosalud/booking-service/internal/api/handlers/create_booking"
	getAdminBookingsHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_admin_bookings"
	getAgendaHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_agenda"
	getAvailableSlotsHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_booking"
	getBusinessInfoHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_business_info"
	getDayBookingsHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_day_bookings"
	getMyBookingsHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_my_bookings"
	getRevenueHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_revenue"
	getServicesHandler "github.com/osteosalud/booking-service/internal/api/handlers/get_services"
	rescheduleBookingHandler "github.com/osteosalud/booking-service/internal/api/handlers/reschedule_booking"
	"github.com/osteosalud/booking-service/internal/api/middleware"
	"github.com/osteosalud/booking-service/internal/auth"
	"github.com/osteosalud/booking-service/internal/config"
	"github.com/osteosalud/booking-service/internal/domain"
	bookingRepo "github.com/osteosalud/booking-service/internal/infra/storage/booking"
	"github.com/osteosalud/booking-service/internal/infra/storage/bookingmem"
	bookingsService "github.com/osteosalud/booking-service/internal/service/bookings"
	catalogService "github.com/osteosalud/booking-service/internal/service/catalog"
	createBookingUC "github.com/osteosalud/booking-service/internal/usecase/create_booking"
	getAgendaUC "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
	getAvailableSlotsUC "github.com/osteosalud/booking-service/internal/usecase/get_available_slots"
	getRevenueUC "github.com/osteosalud/booking-service/internal/usecase/get_revenue"
	"github.com/osteosalud/booking-service/pkg/dbmetrics"
	"github.com/osteosalud/booking-service/pkg/logger"
	"github.com/osteosalud/booking-service/pkg/metrics"
	"github.com/osteosalud/booking-service/pkg/simpletxmanager"
	"github.com/osteosalud/booking-service/pkg/txmanager"
)

// bookingStorage объединяет все операции хранилища бронирований
// Реализуется как Postgres-репозиторием, так и демо-хранилищем в памяти
type bookingStorage interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	Reschedule(ctx context.Context, id string, date string, timeLabel string) error
}

// txManager минимальный контракт транзакций, нужный usecase-слою
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	modeLive = "live"
	modeDemo = "demo"
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

	log.Info("Starting OsteoSalud booking service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем хранилище: Postgres или демо-набор в памяти
	// Демо-режим включается конфигурацией либо фолбэком при недоступной БД
	var (
		storage bookingStorage
		txMgr   txManager
		mode    = modeLive
	)

	if cfg.Demo.Enabled {
		mode = modeDemo
		log.Info("Demo mode enabled by configuration")
	} else {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to open database: %v", err)
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			if !cfg.Demo.FallbackOK {
				log.Fatal("Failed to ping database: %v", err)
			}
			log.Warn("Database unreachable (%v), falling back to demo mode", err)
			_ = db.Close()
			mode = modeDemo
		} else {
			defer db.Close()
			log.Info("Connected to database (host=%s, port=%d, db=%s)",
				cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

			if cfg.Metrics.Enabled {
				wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
				storage = bookingRepo.NewRepository(wrappedDB)
				txMgr = txmanager.NewTransactionManager(wrappedDB)
				log.Info("Database metrics collection started")
			} else {
				storage = bookingRepo.NewRepository(db)
				txMgr = simpletxmanager.NewTransactionManager(db)
			}
		}
	}

	if mode == modeDemo {
		storage = bookingmem.NewRepository(bookingmem.DemoBookings(time.Now()))
		txMgr = bookingmem.NewTxManager()
		log.Info("Using in-memory demo storage (data is not persisted)")
	}

	// Статический каталог и расписание из конфигурации
	schedule := cfg.DomainSchedule()
	catalog := catalogService.NewService(cfg.DomainServices(), cfg.DomainBusinessInfo(), schedule)
	log.Info("Catalog loaded: %d services, schedule %d:00-%d:00",
		len(cfg.Catalog.Services), schedule.Start, schedule.End)

	// Административный доступ: bcrypt-проверка PIN и JWT-сессии
	pinVerifier := auth.NewPINVerifier(cfg.Admin.PINHash)
	tokenManager := auth.NewTokenManager(
		cfg.Admin.TokenSecret,
		time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute,
	)

	timeProvider := &createBookingUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(storage, txMgr, schedule, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(storage, catalog, txMgr, schedule, timeProvider, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(storage, schedule, log)
	getAgendaUseCase := getAgendaUC.NewUseCase(storage, timeProvider, log)
	getRevenueUseCase := getRevenueUC.NewUseCase(storage, log)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalog, log)
	getBusinessInfo := getBusinessInfoHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(pinVerifier, tokenManager, timeProvider, log)
	getAgenda := getAgendaHandler.NewHandler(getAgendaUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(getAgendaUseCase, log)
	getRevenue := getRevenueHandler.NewHandler(getRevenueUseCase, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint сообщает режим работы хранилища
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","mode":%q}`, mode)
	}).Methods(http.MethodGet)

	// API prefix: идентификатор сессии клиента извлекается для всех маршрутов
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог услуг и информация о практике
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business", getBusinessInfo.Handle).Methods(http.MethodGet)

	// Слоты дня с флагом занятости
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирования клиента (гостевые сессии через X-User-ID)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/my-bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// Вход администратора (единственный /admin маршрут без токена)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer-токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(tokenManager, log))

	admin.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/calendar", getDayBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/revenue", getRevenue.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/schedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

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
		log.Info("Starting server on %s (mode=%s)", addr, mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
