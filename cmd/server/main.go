package main

import (
	"context"
	"log"
	"time"

	"go-booking-assistant/config"
	"go-booking-assistant/internal/cache"
	"go-booking-assistant/internal/database"
	"go-booking-assistant/internal/handler"
	"go-booking-assistant/internal/queue"
	"go-booking-assistant/internal/repository"
	"go-booking-assistant/internal/service"
	"go-booking-assistant/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogRepo := repository.NewPostgresCatalogRepository(pool)
	if err := catalogRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare catalog: %v", err)
	}

	ticketRepo := repository.NewPostgresTicketRepository(pool)
	if err := ticketRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare tickets: %v", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLSeconds) * time.Second
	sessions := cache.NewRedisSessionStore(rdb, sessionTTL)
	transcripts := cache.NewRedisTranscriptLog(rdb, sessionTTL)

	bookingQueue, err := queue.NewRedisStreamBookingQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize booking queue: %v", err)
	}

	dialogService := service.NewDialogService(catalogRepo)
	chatService := service.NewChatService(sessions, transcripts, dialogService, bookingQueue)
	ticketService := service.NewTicketService(catalogRepo, ticketRepo, service.NewExtractionService())

	ticketWorker := worker.NewTicketWorker(ticketService, bookingQueue)
	if err := ticketWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start ticket worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewChatHandler(chatService).RegisterRoutes(router)
	handler.NewCatalogHandler(catalogRepo).RegisterRoutes(router)
	handler.NewTicketHandler(ticketRepo).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
