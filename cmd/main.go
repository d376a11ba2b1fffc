package main

import (
	"editorial/database"
	"editorial/docs"
	"editorial/internal/cache"
	"editorial/internal/controllers"
	"editorial/internal/notification"
	"editorial/internal/repository"
	"editorial/internal/services"
	"editorial/internal/storage"
	"editorial/routes"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Editorial API"
	docs.SwaggerInfo.Description = "Submission, peer review and publication workflow for journal articles."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Article reads go through Redis when it is available.
	var articleRepo repository.ArticleRepository
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Redis unavailable, article cache disabled: %v", err)
		articleRepo = repository.NewArticleRepository(database.DB)
	} else {
		defer redisClient.Close()
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
		log.Println("Article cache enabled")
	}

	blobStore := storage.NewGormBlobStore(database.DB)
	authorRepo := repository.NewAuthorRepository(database.DB)
	censorRepo := repository.NewCensorRepository(database.DB)
	attachmentRepo := repository.NewAttachmentRepository(database.DB, blobStore)

	// Status-change events go to the notification system via RabbitMQ.
	var publisher notification.Publisher = notification.NoopPublisher{}
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		amqpPublisher, err := notification.NewAMQPPublisher(rabbitMQURL)
		if err != nil {
			log.Printf("RabbitMQ unavailable, status events disabled: %v", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			log.Println("Status event publisher connected")
		}
	}

	articleService := services.NewArticleService(
		articleRepo,
		authorRepo,
		censorRepo,
		attachmentRepo,
		blobStore,
		publisher,
	)
	articleController := controllers.NewArticleController(articleService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Editorial API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterSwaggerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
