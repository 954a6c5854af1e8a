package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/middleware"
	"leadcrm/internal/modules/auth"
	"leadcrm/internal/modules/contract"
	"leadcrm/internal/modules/dashboard"
	"leadcrm/internal/modules/lead"
	"leadcrm/internal/modules/task"
	"leadcrm/internal/modules/template"
	jwtsvc "leadcrm/internal/pkg/jwt"
	"leadcrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	contractRepo := repository.NewContractRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(leadRepo, activityRepo)
	leadHandler := lead.NewHandler(leadService)

	taskService := task.NewService(taskRepo, leadRepo)
	taskHandler := task.NewHandler(taskService)

	contractService := contract.NewService(contractRepo)
	contractHandler := contract.NewHandler(contractService)

	dashboardService := dashboard.NewService(leadRepo, taskRepo, contractRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	templateService := template.NewService(templateRepo)
	templateHandler := template.NewHandler(templateService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			leadHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			contractHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			templateHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
