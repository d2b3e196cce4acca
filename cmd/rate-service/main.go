package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoteldesk/rate-calendar-service/internal/config"
	"github.com/hoteldesk/rate-calendar-service/internal/delivery/http/handlers"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	publisher "github.com/hoteldesk/rate-calendar-service/internal/infrastructure/kafka"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/memstore"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/metrics"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/migrate"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/repository"
	"github.com/hoteldesk/rate-calendar-service/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	// Init repositories: postgres when a DSN is configured, in-memory otherwise
	var (
		calendarRepo domain.CalendarRepository
		roomTypeRepo domain.RoomTypeRepository
		ratePlanRepo domain.RatePlanRepository
		bulkJobRepo  domain.BulkJobRepository
	)
	if cfg.RateDB.Dsn != "" {
		db := postgres.MustInitDB(cfg)
		if cfg.RateDB.MigrationsPath != "" {
			if err := migrate.RunMigrations(db, cfg.RateDB.MigrationsPath); err != nil {
				log.Fatalf("failed to run migrations: %v", err)
			}
		}
		calendarRepo = repository.NewDefaultCalendarRepository(db)
		roomTypeRepo = repository.NewDefaultRoomTypeRepository(db)
		ratePlanRepo = repository.NewDefaultRatePlanRepository(db)
		bulkJobRepo = repository.NewDefaultBulkJobRepository(db)
	} else {
		log.Println("no DSN configured, using in-memory store")
		calendarRepo = memstore.NewMemoryCalendarRepository()
		roomTypeRepo = memstore.NewMemoryRoomTypeRepository()
		ratePlanRepo = memstore.NewMemoryRatePlanRepository()
		bulkJobRepo = memstore.NewMemoryBulkJobRepository()
	}

	// Init kafka publisher
	var pub domain.PublisherPort
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		pub = publisher.NewDefaultKafkaPublisher(brokers)
	} else {
		log.Println("no kafka broker configured, rate events disabled")
	}

	calendarMetrics := metrics.NewCalendarMetrics()

	// Init calendar usecase
	calendarUsecase := usecase.NewDefaultCalendarUsecase(
		calendarRepo,
		roomTypeRepo,
		ratePlanRepo,
		bulkJobRepo,
		pub,
		calendarMetrics,
		cfg.KafkaService.RateEventsTopic,
	)
	// Init config usecases
	roomTypeUsecase := usecase.NewDefaultRoomTypeUsecase(roomTypeRepo)
	ratePlanUsecase := usecase.NewDefaultRatePlanUsecase(ratePlanRepo)

	// HTTP server
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api := router.Group("/api")
	handlers.NewCalendarHandler(calendarUsecase).RegisterRoutes(api)
	handlers.NewRatePlanHandler(roomTypeUsecase, ratePlanUsecase).RegisterRoutes(api)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Calendar size gauge refresher
	go func(ctx context.Context) {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count, err := calendarRepo.CountEntries()
				if err != nil {
					log.Printf("failed to count calendar entries: %v", err)
					continue
				}
				calendarMetrics.SetCalendarSize(count)
			}
		}
	}(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("rate-calendar-service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
