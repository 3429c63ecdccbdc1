package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"taalpal/internal/chat"
	"taalpal/internal/config"
	"taalpal/internal/db"
	"taalpal/internal/event"
	"taalpal/internal/handlers"
	"taalpal/internal/middleware"
	"taalpal/internal/repository"
	"taalpal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDB.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancel()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, activity events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories, services, handlers
	progressRepo := repository.NewProgressRepository(database)
	progressService := service.NewProgressService(progressRepo)
	progressHandler := handlers.NewProgressHandler(progressService)

	grammarRepo := repository.NewGrammarRepository(database)
	grammarService := service.NewGrammarService(grammarRepo)
	grammarHandler := handlers.NewGrammarHandler(grammarService, progressService)

	vocabRepo := repository.NewVocabularyRepository(database)
	vocabService := service.NewVocabularyService(vocabRepo)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, progressService)

	testRepo := repository.NewTestRepository(database)
	resultRepo := repository.NewResultRepository(database)
	testService := service.NewTestService(testRepo, resultRepo, progressService)
	testHandler := handlers.NewTestHandler(testService)

	chatService := service.NewChatService(chat.NewResponder(nil))
	chatHandler := handlers.NewChatHandler(chatService)

	api := r.Group("/api")

	// Rate limiting (redis-backed, skipped when redis is not configured)
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		api.Use(middleware.RateLimit(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window))
	} else {
		log.Println("Redis not configured, rate limiting disabled")
	}

	grammar := api.Group("/grammar")
	{
		grammar.GET("/", grammarHandler.ListTopics)
		grammar.GET("/:topicId", grammarHandler.GetTopic)
		grammar.GET("/:topicId/lessons/:order", grammarHandler.GetLesson)
		grammar.POST("/:topicId/lessons/complete", func(c *gin.Context) {
			grammarHandler.CompleteLesson(c)
			if publisher != nil {
				publisher.Publish("progress.lesson.completed", gin.H{
					"topicId":   c.Param("topicId"),
					"topicType": "grammar",
					"timestamp": time.Now(),
				})
			}
		})
		grammar.POST("/", grammarHandler.CreateTopic)
		grammar.PUT("/:topicId", grammarHandler.UpdateTopic)
	}

	vocabulary := api.Group("/vocabulary")
	{
		vocabulary.GET("/", vocabHandler.ListTopics)
		vocabulary.GET("/:topicId", vocabHandler.GetTopic)
		vocabulary.GET("/:topicId/words", vocabHandler.GetWords)
		vocabulary.POST("/:topicId/lessons/complete", func(c *gin.Context) {
			vocabHandler.CompleteLesson(c)
			if publisher != nil {
				publisher.Publish("progress.lesson.completed", gin.H{
					"topicId":   c.Param("topicId"),
					"topicType": "vocabulary",
					"timestamp": time.Now(),
				})
			}
		})
		vocabulary.POST("/", vocabHandler.CreateTopic)
		vocabulary.PUT("/:topicId", vocabHandler.UpdateTopic)
	}

	tests := api.Group("/tests")
	{
		tests.GET("/", testHandler.ListTests)
		tests.GET("/:testId", testHandler.GetTest)
		tests.GET("/:testId/results", testHandler.GetResultsByTest)
		tests.POST("/:testId/submit", func(c *gin.Context) {
			testHandler.SubmitTest(c)
			if publisher != nil {
				publisher.Publish("test.submitted", gin.H{
					"testId":    c.Param("testId"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	users := api.Group("/users")
	{
		users.GET("/:userId/results", testHandler.GetResultsByUser)
	}

	progressRoutes := api.Group("/progress")
	{
		progressRoutes.GET("/:userId", progressHandler.GetProgress)
		progressRoutes.POST("/:userId/lesson", progressHandler.CompleteLesson)
		progressRoutes.POST("/:userId/activity", func(c *gin.Context) {
			progressHandler.RecordActivity(c)
			if publisher != nil {
				publisher.Publish("progress.activity.recorded", gin.H{
					"userId":    c.Param("userId"),
					"timestamp": time.Now(),
				})
			}
		})
		progressRoutes.PUT("/:userId/preferences", progressHandler.UpdatePreferences)
	}

	chatRoutes := api.Group("/chat")
	{
		chatRoutes.POST("/message", func(c *gin.Context) {
			chatHandler.SendMessage(c)
			if publisher != nil {
				publisher.Publish("chat.message.sent", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		chatRoutes.GET("/history/:userId", chatHandler.GetHistory)
		chatRoutes.GET("/suggestions", chatHandler.GetSuggestions)
	}

	// Static front end
	r.StaticFile("/", cfg.Server.StaticDir+"/index.html")
	r.Static("/static", cfg.Server.StaticDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})

	log.Printf("TaalPal server running on http://localhost:%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
