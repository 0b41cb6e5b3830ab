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

	cancelReservationHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/delete_reservation"
	getAllReservationsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_all_reservations"
	getReservationHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_reservation"
	getRoomReservationsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_room_reservations"
	getRoomsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_rooms"
	getStatsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_stats"
	getUserReservationsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/get_user_reservations"
	manageRoomsHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/manage_rooms"
	updateReservationHandler "github.com/bandhall/BRS-ReservationService/internal/api/handlers/update_reservation"
	"github.com/bandhall/BRS-ReservationService/internal/api/middleware"
	"github.com/bandhall/BRS-ReservationService/internal/config"
	reservationRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/room"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
	reservationsService "github.com/bandhall/BRS-ReservationService/internal/service/reservations"
	roomsService "github.com/bandhall/BRS-ReservationService/internal/service/rooms"
	statsService "github.com/bandhall/BRS-ReservationService/internal/service/stats"
	createReservationUC "github.com/bandhall/BRS-ReservationService/internal/usecase/create_reservation"
	updateReservationUC "github.com/bandhall/BRS-ReservationService/internal/usecase/update_reservation"
	"github.com/bandhall/BRS-ReservationService/pkg/dbmetrics"
	"github.com/bandhall/BRS-ReservationService/pkg/logger"
	"github.com/bandhall/BRS-ReservationService/pkg/metrics"
	"github.com/bandhall/BRS-ReservationService/pkg/simpletxmanager"
	"github.com/bandhall/BRS-ReservationService/pkg/txmanager"
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

	log.Info("Starting BRS-ReservationService...")
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

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Деградированный режим: проверка конфликтов и вставка без транзакции.
	// Включается только явно через конфигурацию
	if !cfg.Database.Transactions {
		txMgr = simpletxmanager.NewPassthroughManager(log)
	}

	// Планировщик - единая точка проверки конфликтов и политики бронирования
	reservationPlanner := planner.NewPlanner(roomRepository, reservationRepository, log)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	roomsSvc := roomsService.NewService(roomRepository, log)
	statsSvc := statsService.NewService(reservationRepository, roomRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationPlanner,
		reservationRepository,
		txMgr,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationPlanner,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationsSvc, roomsSvc, log)
	getAllReservations := getAllReservationsHandler.NewHandler(reservationsSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, log)
	manageRooms := manageRoomsHandler.NewHandler(roomsSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Каталог комнат и расписание доступны без аутентификации
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRooms.HandleByID).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (одиночного или recurring серии)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Бронирования текущего пользователя
	protected.HandleFunc("/reservations/my", getUserReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Редактирование бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (мягкое удаление)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Физическое удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Все бронирования, включая отмененные
	admin.HandleFunc("/reservations", getAllReservations.Handle).Methods(http.MethodGet)

	// Управление комнатами
	admin.HandleFunc("/rooms", manageRooms.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", manageRooms.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/rooms/{roomId}/availability", manageRooms.HandleSetAvailability).Methods(http.MethodPatch)
	admin.HandleFunc("/rooms/{roomId}", manageRooms.HandleDelete).Methods(http.MethodDelete)

	// Сводная статистика
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
