package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"cardslite/backend/internal/api/handler"
	"cardslite/backend/internal/config"
	"cardslite/backend/internal/game"
	"cardslite/backend/internal/localization"
	"cardslite/backend/internal/models"
	"cardslite/backend/internal/storage"
	"cardslite/backend/internal/telegram"
	"cardslite/backend/internal/topics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "cardslitedb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.Topic{},
		&models.Question{},
		&models.Room{},
		&models.ChatEntry{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting CardsLite Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	coordinator := game.NewCoordinator(s, s)
	topicSvc := topics.NewService(s)

	localizer, err := localization.NewLocalizer("internal/localization", envOr("BOT_LANG", "ru"))
	if err != nil {
		log.Fatalf("Failed to create localizer: %v", err)
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set!")
	}
	adminID, err := strconv.ParseInt(os.Getenv("ADMIN_ID"), 10, 64)
	if err != nil {
		log.Fatal("ADMIN_ID is not set or not a number!")
	}

	botService, err := telegram.NewBotService(botToken, adminID, coordinator, s, topicSvc, localizer)
	if err != nil {
		log.Fatalf("Failed to start Telegram bot: %v", err)
	}
	go botService.Run()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set!")
	}

	r := gin.Default()
	h := handler.NewHandler(s, topicSvc, []byte(jwtSecret))

	r.GET("/health", h.Health)
	r.GET("/topics", h.ListTopics)
	r.POST("/topics", h.RequireAdmin(), h.CreateTopic)
	r.GET("/rooms/:id", h.GetRoom)
	r.GET("/ws/rooms/:id", h.ServeRoomEvents)

	server := &http.Server{
		Addr:           ":" + envOr("HTTP_PORT", "8080"),
		Handler:        r,
		ReadTimeout:    config.HTTPReadTimeout,
		WriteTimeout:   config.HTTPWriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
