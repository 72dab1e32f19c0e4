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
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	createAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_appointment"
	createInsurancePlanHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_insurance_plan"
	createScheduleBlockHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_schedule_block"
	getDayAgendaHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_day_agenda"
	getDoctorSettingsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_doctor_settings"
	getInsuranceDaysHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_insurance_days"
	"github.com/m04kA/SMC-AgendaService/internal/api/handlers/health"
	listDoctorsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_doctors"
	listInsurancePlansHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_insurance_plans"
	updateDoctorSettingsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_doctor_settings"
	updateInsuranceDaysHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_insurance_days"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/infra/cache"
	"github.com/m04kA/SMC-AgendaService/internal/infra/lock"
	settingsRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/internal/service/daydata"
	insuranceService "github.com/m04kA/SMC-AgendaService/internal/service/insurance"
	settingsService "github.com/m04kA/SMC-AgendaService/internal/service/settings"
	"github.com/m04kA/SMC-AgendaService/internal/service/slots"
	createAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	createScheduleBlockUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_schedule_block"
	getDayAgendaUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_agenda"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/redisdb"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Calendar.Timezone, err)
	}
	log.Info("Calendar timezone: %s", loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище снимков настроек (опционально)
	var snapshots settingsService.SnapshotRepository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			snapshots = settingsRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			snapshots = settingsRepo.NewRepository(db)
		}
	} else {
		log.Warn("Database disabled: settings snapshots are not persisted")
	}

	// Redis нужен для кэша и/или блокировок
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = redisdb.New(context.Background(), redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Second
	var dayCache daydata.Cache
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		dayCache = cache.NewRedisCache(redisClient, cacheTTL)
	case config.CacheDriverMemory:
		dayCache = cache.NewMemoryCache(cacheTTL, time.Duration(cfg.Cache.CleanupInterval)*time.Second)
	}
	log.Info("Day cache driver: %s (ttl=%ds)", cfg.Cache.Driver, cfg.Cache.TTL)

	var locker createAppointmentUC.Locker
	if cfg.Lock.Driver == config.CacheDriverRedis {
		locker = lock.NewRedisLock(redisClient)
	} else {
		locker = lock.NewMemoryLock()
	}
	log.Info("Agenda lock driver: %s (ttl=%ds)", cfg.Lock.Driver, cfg.Lock.TTL)

	// Инициализируем клиента бэкенда клиники
	clinicClient := clinicapi.NewClient(clinicapi.Config{
		BaseURL:            cfg.ClinicAPI.URL,
		Timeout:            time.Duration(cfg.ClinicAPI.Timeout) * time.Second,
		ServiceToken:       cfg.ClinicAPI.ServiceToken,
		BreakerMaxFailures: cfg.ClinicAPI.BreakerMaxFailures,
		BreakerOpenTimeout: time.Duration(cfg.ClinicAPI.BreakerOpenTimeout) * time.Second,
	}, loc, metricsCollector, log)
	log.Info("Clinic API client initialized (url=%s, timeout=%ds)", cfg.ClinicAPI.URL, cfg.ClinicAPI.Timeout)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(clinicClient, snapshots, log)
	dayDataSvc := daydata.NewService(clinicClient, dayCache, metricsCollector, log)
	insuranceSvc := insuranceService.NewService(clinicClient, log)
	projector := slots.NewProjector(loc)

	// Инициализируем use cases
	getDayAgendaUseCase := getDayAgendaUC.NewUseCase(
		settingsSvc,
		dayDataSvc,
		clinicClient,
		projector,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		clinicClient,
		settingsSvc,
		dayDataSvc,
		projector,
		locker,
		time.Duration(cfg.Lock.TTL)*time.Second,
		log,
	)

	createScheduleBlockUseCase := createScheduleBlockUC.NewUseCase(
		clinicClient,
		dayDataSvc,
		loc,
		log,
	)

	// Инициализируем handlers
	listDoctors := listDoctorsHandler.NewHandler(clinicClient, log)
	getDayAgenda := getDayAgendaHandler.NewHandler(getDayAgendaUseCase, loc, log)
	getDoctorSettings := getDoctorSettingsHandler.NewHandler(settingsSvc, log)
	updateDoctorSettings := updateDoctorSettingsHandler.NewHandler(settingsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, loc, log)
	createScheduleBlock := createScheduleBlockHandler.NewHandler(createScheduleBlockUseCase, loc, log)
	listInsurancePlans := listInsurancePlansHandler.NewHandler(insuranceSvc, log)
	createInsurancePlan := createInsurancePlanHandler.NewHandler(insuranceSvc, log)
	getInsuranceDays := getInsuranceDaysHandler.NewHandler(insuranceSvc, log)
	updateInsuranceDays := updateInsuranceDaysHandler.NewHandler(insuranceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix, все маршруты требуют Bearer токен
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		})
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	api.Use(middleware.Auth)

	// --- Врачи ---
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)

	// Агенда врача на день
	api.HandleFunc("/doctors/{doctorId}/agenda", getDayAgenda.Handle).Methods(http.MethodGet)

	// --- Настройки рабочего дня ---
	api.HandleFunc("/doctors/{doctorId}/settings", getDoctorSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/settings", updateDoctorSettings.Handle).Methods(http.MethodPut)

	// --- Записи и блокировки ---
	api.HandleFunc("/doctors/{doctorId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{doctorId}/blocks", createScheduleBlock.Handle).Methods(http.MethodPost)

	// --- Страховые планы ---
	api.HandleFunc("/insurance-plans", listInsurancePlans.Handle).Methods(http.MethodGet)
	api.HandleFunc("/insurance-plans", createInsurancePlan.Handle).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{doctorId}/insurance-days", getInsuranceDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/insurance-days", updateInsuranceDays.Handle).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
