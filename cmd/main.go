package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/database"
	_ "github.com/Anandakumar9/Ask-Anand-sub000/docs" // Swagger docs - auto-generated
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/controller"
	adminctrl "github.com/Anandakumar9/Ask-Anand-sub000/internal/controller/admin"
	userctrl "github.com/Anandakumar9/Ask-Anand-sub000/internal/controller/user"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/jobs"
	_ "github.com/Anandakumar9/Ask-Anand-sub000/internal/llm/gemini" // Registers the gemini provider
	_ "github.com/Anandakumar9/Ask-Anand-sub000/internal/llm/openai" // Registers the openai provider
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/logger"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/metrics"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/middleware"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/prompt"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Ask Anand Exam Prep API
// @version 1.0
// @description API for competitive-exam preparation: mixed mock tests (previous-year + AI-generated questions), topic-wise study sessions, and a leaderboard.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@askanand.app
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer ".
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewCacheStore,        // Provides cache.Store (Redis or in-process)
			prompt.NewManager,
			service.NewLLMProvider, // Provides llm.Provider (nil when generation is disabled)
			NewGinEngine,           // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewExamRepository,
			repository.NewSubjectRepository,
			repository.NewTopicRepository,
			repository.NewQuestionRepository,
			repository.NewMockTestRepository,
			repository.NewStudySessionRepository,
			repository.NewLeaderboardRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewMixPlannerService,
			service.NewSemanticRetrieverService,
			service.NewQuestionGeneratorService,
			service.NewTestOrchestratorService,
			service.NewTestSubmissionService,
			service.NewMockTestService,
			service.NewContentService,
			service.NewStudySessionService,
			service.NewDashboardService,
			service.NewUserService,
			service.NewPreGenerationScheduler,
		),

		// Background Jobs Layer
		fx.Provide(
			func(leaderboardRepo repository.LeaderboardRepository) *jobs.LeaderboardRefresher {
				return jobs.NewLeaderboardRefresher(leaderboardRepo, "")
			},
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewTestController,
			userctrl.NewCatalogController,
			userctrl.NewStudySessionController,
			userctrl.NewAccountController,
			adminctrl.NewContentController,
			controller.NewHealthController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewCacheStore selects the question cache backend. With a Redis address
// configured the cache is shared across instances; without one it falls back
// to an in-process store suitable for a single node.
func NewCacheStore(cfg *config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("No Redis address configured, using in-process question cache")
		return cache.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis question cache")
	return cache.NewRedisStore(client)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // Returning empty string to avoid double logging if Gin's default logger is also active
	}))
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server,
// scheduler, and cron lifecycles.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	testCtrl *userctrl.TestController,
	catalogCtrl *userctrl.CatalogController,
	sessionCtrl *userctrl.StudySessionController,
	accountCtrl *userctrl.AccountController,
	contentCtrl *adminctrl.ContentController,
	healthCtrl *controller.HealthController,
	scheduler service.PreGenerationScheduler,
	refresher *jobs.LeaderboardRefresher,
) {
	// Unauthenticated operational endpoints
	router.GET("/healthz", healthCtrl.Health)
	router.GET("/metrics", metrics.Handler())

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	userAPIGroup.Use(middleware.Auth(cfg.Auth.JWTSecret, userRepo))
	{
		// Catalog browsing
		userAPIGroup.GET("/exams", catalogCtrl.ListExams)
		userAPIGroup.GET("/exams/:exam_id/subjects", catalogCtrl.ListSubjects)
		userAPIGroup.GET("/subjects/:subject_id/topics", catalogCtrl.ListTopics)
		userAPIGroup.GET("/topics/:topic_id", catalogCtrl.GetTopic)

		// Mock tests
		userAPIGroup.POST("/topics/:topic_id/tests", testCtrl.StartTest)
		userAPIGroup.GET("/tests", testCtrl.ListTests)
		userAPIGroup.GET("/tests/:public_id", testCtrl.GetTest)
		userAPIGroup.POST("/tests/:public_id/submit", testCtrl.SubmitTest)

		// Study sessions
		userAPIGroup.POST("/study-sessions", sessionCtrl.StartSession)
		userAPIGroup.GET("/study-sessions", sessionCtrl.ListSessions)
		userAPIGroup.POST("/study-sessions/:session_id/end", sessionCtrl.EndSession)

		// Account, dashboard, leaderboard
		userAPIGroup.GET("/me", accountCtrl.Me)
		userAPIGroup.PUT("/me", accountCtrl.UpdateMe)
		userAPIGroup.GET("/dashboard", accountCtrl.Dashboard)
		userAPIGroup.GET("/leaderboard", accountCtrl.Leaderboard)
	}

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := userAPIGroup.Group("/admin")
	adminAPIGroup.Use(middleware.RequireAdmin())
	{
		adminAPIGroup.POST("/exams", contentCtrl.CreateExam)
		adminAPIGroup.POST("/subjects", contentCtrl.CreateSubject)
		adminAPIGroup.POST("/topics", contentCtrl.CreateTopic)
		adminAPIGroup.POST("/questions/import", contentCtrl.ImportQuestions)
		adminAPIGroup.GET("/topics/:topic_id/questions", contentCtrl.ListQuestions)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := refresher.Start(); err != nil {
				return err
			}
			log.Info().Msgf("Ask Anand API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			refresher.Stop()
			scheduler.Stop()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Subject{},
		&model.Topic{},
		&model.Question{},
		&model.MockTest{},
		&model.MockTestQuestion{},
		&model.StudySession{},
		&model.LeaderboardEntry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
