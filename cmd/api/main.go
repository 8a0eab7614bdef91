package main

import (
	"context"
	"os"

	_ "github.com/Tiri0n/abkhazia-tax-service/api/swagger" // swagger docs
	"github.com/Tiri0n/abkhazia-tax-service/internal/database"
	"github.com/Tiri0n/abkhazia-tax-service/internal/handler"
	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
	"github.com/Tiri0n/abkhazia-tax-service/internal/seed"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories groups the per-entity stores behind their interfaces so the
// rest of the wiring does not care which backend is active
type repositories struct {
	users         repository.UserRepository
	tokens        repository.TokenRepository
	obligations   repository.ObligationRepository
	payments      repository.PaymentRepository
	documents     repository.DocumentRepository
	notifications repository.NotificationRepository
	inquiries     repository.InquiryRepository
}

// @title           Citizen Tax Portal API
// @version         1.0
// @description     REST backend for the citizen tax portal: obligations, payments, documents, notifications and inquiries.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		logrus.Info("no configs/.env file found or error loading it")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Pick the storage backend: Postgres when DATABASE_URL is set, the
	// in-memory store otherwise.
	var repos repositories
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := database.NewConnection(dsn)
		if err != nil {
			logrus.Fatalf("database connection failed: %v", err)
		}
		logrus.Info("connected to PostgreSQL")
		repos = repositories{
			users:         repository.NewUserRepository(db),
			tokens:        repository.NewTokenRepository(db),
			obligations:   repository.NewObligationRepository(db),
			payments:      repository.NewPaymentRepository(db),
			documents:     repository.NewDocumentRepository(db),
			notifications: repository.NewNotificationRepository(db),
			inquiries:     repository.NewInquiryRepository(db),
		}
	} else {
		logrus.Info("DATABASE_URL not set, using in-memory store")
		store := repository.NewMemoryStore()
		repos = repositories{
			users:         store.Users(),
			tokens:        store.Tokens(),
			obligations:   store.Obligations(),
			payments:      store.Payments(),
			documents:     store.Documents(),
			notifications: store.Notifications(),
			inquiries:     store.Inquiries(),
		}
	}

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seed.Demo(context.Background(), repos.users, repos.obligations, repos.notifications, repos.documents); err != nil {
			logrus.WithError(err).Warn("demo seeding failed")
		}
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	authService := service.NewAuthService(repos.users, repos.tokens, middleware.GetJWTSecret())
	obligationService := service.NewObligationService(repos.obligations)
	paymentService := service.NewPaymentService(repos.payments, repos.obligations)
	documentService := service.NewDocumentService(repos.documents)
	notificationService := service.NewNotificationService(repos.notifications, wsHub)
	inquiryService := service.NewInquiryService(repos.inquiries)
	dashboardService := service.NewDashboardService(repos.obligations, repos.notifications)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	obligationHandler := handler.NewObligationHandler(obligationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	documentHandler := handler.NewDocumentHandler(documentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	obligationHandler.RegisterRoutes(api)
	paymentHandler.RegisterRoutes(api)
	documentHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	inquiryHandler.RegisterRoutes(api)
	dashboardHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
