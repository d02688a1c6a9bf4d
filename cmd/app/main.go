package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"evoluciona/cmd/fx/account_fx"
	"evoluciona/cmd/fx/catalog_fx"
	"evoluciona/cmd/fx/db_fx"
	"evoluciona/cmd/fx/goal_fx"
	"evoluciona/cmd/fx/health_fx"
	"evoluciona/cmd/fx/llm_fx"
	"evoluciona/cmd/fx/logger_fx"
	"evoluciona/cmd/fx/mail_fx"
	"evoluciona/cmd/fx/memcache_fx"
	"evoluciona/cmd/fx/plan_fx"
	"evoluciona/cmd/fx/reminder_fx"
	"evoluciona/cmd/fx/survey_fx"
	"evoluciona/cmd/fx/tracking_fx"
	"evoluciona/cmd/fx/video_fx"
	"evoluciona/internal/api/controllers"
	"evoluciona/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		llm_fx.Module,

		account_fx.Module,
		survey_fx.Module,
		plan_fx.Module,
		goal_fx.Module,
		tracking_fx.Module,
		catalog_fx.Module,
		health_fx.Module,
		video_fx.Module,
		reminder_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	planController *controllers.PlanController,
	goalController *controllers.GoalController,
	trackingController *controllers.TrackingController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController,
	videoController *controllers.VideoController,
	restrictionController *controllers.RestrictionController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		surveyController,
		planController,
		goalController,
		trackingController,
		catalogController,
		healthController,
		videoController,
		restrictionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	planController *controllers.PlanController,
	goalController *controllers.GoalController,
	trackingController *controllers.TrackingController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController,
	videoController *controllers.VideoController,
	restrictionController *controllers.RestrictionController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/verify-otp", accountController.VerifyOtpToken)
	accounts.POST("/reset-password", accountController.ResetPasswordWithOtp)
	accounts.GET("/all",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"),
		accountController.GetAllAccounts)

	r.GET("/catalogs", catalogController.GetCatalogs)

	auth := r.Group("/", middleware.JWTAuthMiddleware())
	auth.POST("/survey/complete", surveyController.CompleteSurvey)
	auth.GET("/survey-data", surveyController.GetSurveyData)

	restrictions := auth.Group("/restrictions")
	restrictions.POST("", restrictionController.AddRestriction)
	restrictions.GET("", restrictionController.ListRestrictions)
	restrictions.DELETE("/:id", restrictionController.DeleteRestriction)

	auth.POST("/generate-meal-plan", planController.GenerateMealPlan)
	auth.POST("/generate-training-plan", planController.GenerateTrainingPlan)
	auth.GET("/meal-plan", planController.GetMealPlan)
	auth.GET("/training-plan", planController.GetTrainingPlan)

	goals := auth.Group("/goals")
	goals.POST("", goalController.CreateGoal)
	goals.GET("", goalController.ListGoals)
	goals.DELETE("/:id", goalController.DeleteGoal)
	goals.POST("/tracking", goalController.AddTracking)
	goals.GET("/:id/tracking", goalController.ListTracking)

	tracking := auth.Group("/tracking")
	tracking.POST("/progress", trackingController.AddProgress)
	tracking.GET("/progress", trackingController.ListProgress)
	tracking.POST("/metrics", trackingController.AddMetric)
	tracking.GET("/metrics", trackingController.ListMetrics)
	tracking.POST("/meal-plan", trackingController.AddMealTracking)
	tracking.POST("/training-plan", trackingController.AddTrainingTracking)

	auth.GET("/health-metrics", healthController.GetHealthMetrics)

	auth.GET("/videos/search", videoController.SearchVideos)
}
