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

	createManualReservationHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/create_manual_reservation"
	createMemberReservationHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/create_member_reservation"
	createQuoteHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/create_quote"
	createReservationHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/create_service"
	deleteMemberHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/delete_member"
	deleteReservationHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/delete_reservation"
	deleteServiceHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/delete_service"
	getMemberHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/get_member"
	getReservationHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/get_reservation"
	getSlotAvailabilityHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/get_slot_availability"
	listMembersHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/list_members"
	listReservationsHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/list_services"
	setServiceVisibilityHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/set_service_visibility"
	signupMemberHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/signup_member"
	updateReservationStatusHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/update_reservation_status"
	updateServiceHandler "github.com/m04kA/SMC-DetailingStudio/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-DetailingStudio/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/config"
	catalogRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/catalog"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
	reservationRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/schema"
	"github.com/m04kA/SMC-DetailingStudio/internal/integrations/notification"
	catalogService "github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	membersService "github.com/m04kA/SMC-DetailingStudio/internal/service/members"
	reservationsService "github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
	getSlotAvailabilityUC "github.com/m04kA/SMC-DetailingStudio/internal/usecase/get_slot_availability"
	quoteUC "github.com/m04kA/SMC-DetailingStudio/internal/usecase/quote"
	"github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
	"github.com/m04kA/SMC-DetailingStudio/pkg/metrics"
	"github.com/m04kA/SMC-DetailingStudio/pkg/txmanager"
)

// poolStatsInterval период публикации статистики пула соединений
const poolStatsInterval = 15 * time.Second

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-DetailingStudio...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены: обёртки и счётчики это допускают)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	go wrappedDB.CollectPoolStats(poolStatsInterval, stopMetricsCh)

	// Схема идемпотентна, применяем при каждом старте
	if err := schema.Apply(context.Background(), wrappedDB); err != nil {
		log.Fatal("Failed to apply schema: %v", err)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	memberRepository := memberRepo.NewRepository(wrappedDB)

	// Сетка слотов и ставки
	slots := cfg.TimeSlots()
	if slots == nil {
		slots = booking.DefaultSlots()
	}
	grid, err := booking.NewSlotGrid(slots)
	if err != nil {
		log.Fatal("Invalid slot grid: %v", err)
	}
	policy := booking.Policy{
		DepositPercent:        cfg.Pricing.DepositPercent,
		MemberDiscountPercent: cfg.Pricing.MemberDiscountPercent,
	}
	log.Info("Slot grid: %d slots, deposit=%d%%, member discount=%d%%",
		len(grid.All()), policy.DepositPercent, policy.MemberDiscountPercent)

	// Уведомления
	dispatcher := notification.NewDispatcher(notification.Config{
		Enabled:     cfg.Notification.Enabled,
		Host:        cfg.Notification.SMTPHost,
		Port:        cfg.Notification.SMTPPort,
		Username:    cfg.Notification.Username,
		Password:    cfg.Notification.Password,
		From:        cfg.Notification.From,
		StudioEmail: cfg.Notification.StudioEmail,
	}, log)
	if !cfg.Notification.Enabled {
		log.Warn("Notifications are disabled, booking emails will not be sent")
	}

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		memberRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		createReservationUC.Settings{
			Grid:                grid,
			Policy:              policy,
			ServiceLinks:        cfg.Payment.ServiceLinks,
			StudioCheckoutURL:   cfg.Payment.StudioCheckoutURL,
			NotificationTimeout: time.Duration(cfg.Notification.Timeout) * time.Second,
		},
		log,
	)
	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(reservationRepository, grid, log)
	quoteUseCase := quoteUC.NewUseCase(
		catalogRepository,
		memberRepository,
		grid,
		policy,
		cfg.Payment.ServiceLinks,
		cfg.Payment.StudioCheckoutURL,
		log,
	)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		catalogRepository,
		memberRepository,
		txMgr,
		grid,
		policy,
		metricsCollector,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	membersSvc := membersService.NewService(memberRepository, cfg.Membership.TierLinks, log)

	// Инициализируем handlers
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(getSlotAvailabilityUseCase, log)
	createQuote := createQuoteHandler.NewHandler(quoteUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createMemberReservation := createMemberReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	createManualReservation := createManualReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	listVisibleServices := listServicesHandler.NewHandler(catalogSvc, true, log)
	listAllServices := listServicesHandler.NewHandler(catalogSvc, false, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	setServiceVisibility := setServiceVisibilityHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	signupMember := signupMemberHandler.NewHandler(membersSvc, log)
	getMember := getMemberHandler.NewHandler(membersSvc, log)
	listMembers := listMembersHandler.NewHandler(membersSvc, log)
	deleteMember := deleteMemberHandler.NewHandler(membersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт студии)
	// ============================================================

	api.HandleFunc("/services", listVisibleServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getSlotAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)

	// --- Клуб ---
	api.HandleFunc("/members", signupMember.Handle).Methods(http.MethodPost)
	api.HandleFunc("/members", getMember.Handle).Methods(http.MethodGet)
	api.HandleFunc("/members/reservations", createMemberReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (панель студии, доступ ограничивается на уровне сети)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", createManualReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Каталог ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{name}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{name}/visibility", setServiceVisibility.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{name}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Участники клуба ---
	admin.HandleFunc("/members", listMembers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/members/{id}", deleteMember.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся писем по уже принятым бронированиям
	createReservationUseCase.Wait()

	log.Info("Server stopped gracefully")
}
