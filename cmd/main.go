package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/coverly/intake/config"
	"github.com/coverly/intake/database"
	"github.com/coverly/intake/internal/broadcast"
	adminctrl "github.com/coverly/intake/internal/controller/admin"
	userctrl "github.com/coverly/intake/internal/controller/user"
	"github.com/coverly/intake/internal/logger"
	"github.com/coverly/intake/internal/middleware"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/repository"
	"github.com/coverly/intake/internal/service"
	"github.com/coverly/intake/internal/validation"
)

// @title Insurance Application Intake API
// @version 1.0
// @description Intake and review workflow for insurance applications: dynamic question registry, role-scoped review lifecycle, comments with live notifications.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			validation.NewEngine,
			fx.Annotate(broadcast.NewHub, fx.As(new(broadcast.Broker))),
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewApplicationRepository,
			repository.NewAnswerRepository,
			repository.NewCommentRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuestionService,
			service.NewApplicationService,
			service.NewCommentService,
		),

		// Middleware + Controllers Layer
		fx.Provide(
			func(cfg *config.Config, users repository.UserRepository) *middleware.Auth {
				return middleware.NewAuth(cfg.JWTSecret, users)
			},
			adminctrl.NewQuestionController,
			adminctrl.NewUserController,
			userctrl.NewApplicationController,
			userctrl.NewCommentController,
			userctrl.NewEventController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(database.SeedQuestions),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
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
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Auth,
	questionCtrl *adminctrl.QuestionController,
	userAdminCtrl *adminctrl.UserController,
	applicationCtrl *userctrl.ApplicationController,
	commentCtrl *userctrl.CommentController,
	eventCtrl *userctrl.EventController,
) {
	api := router.Group("/api/v1", auth.Handler())
	{
		applications := api.Group("/applications")
		applications.GET("", applicationCtrl.ListApplications)
		applications.POST("", applicationCtrl.CreateApplication)
		applications.GET("/:id", applicationCtrl.GetApplication)
		applications.PUT("/:id", applicationCtrl.UpdateApplication)
		applications.DELETE("/:id", applicationCtrl.DeleteApplication)

		applications.POST("/:id/comments", commentCtrl.AddComment)
		applications.PUT("/:id/comments/:comment_id", commentCtrl.UpdateComment)
		api.DELETE("/comments/:comment_id", commentCtrl.DeleteComment)

		api.GET("/events", eventCtrl.Stream)
	}

	adminAPI := router.Group("/api/v1/admin", auth.Handler(), middleware.RequireAdmin())
	{
		questions := adminAPI.Group("/questions")
		questions.GET("", questionCtrl.ListQuestions)
		questions.POST("", questionCtrl.CreateQuestion)
		questions.GET("/:id", questionCtrl.GetQuestion)
		questions.PUT("/:id", questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", questionCtrl.DeleteQuestion)

		adminAPI.GET("/users", userAdminCtrl.ListUsers)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Intake API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
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
		&model.Question{},
		&model.Application{},
		&model.ApplicationAnswer{},
		&model.Comment{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
