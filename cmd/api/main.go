package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"mealcycle/internal/auth"
	"mealcycle/internal/db"
	"mealcycle/internal/dish"
	"mealcycle/internal/ingredient"
	"mealcycle/internal/middleware"
	"mealcycle/internal/planner"
	"mealcycle/internal/schedule"
	"mealcycle/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	if os.Getenv("MEAL_PASSWORD") == "" && os.Getenv("MEAL_PASSWORD_HASH") == "" {
		log.Fatal("❌ Set MEAL_PASSWORD or MEAL_PASSWORD_HASH")
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")
	if len(origins) == 1 && strings.TrimSpace(origins[0]) == "" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	dishRepo := dish.NewPostgresRepository(pgDB)
	scheduleRepo := schedule.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService()
	ingredientService := ingredient.NewService(ingredientRepo, dishRepo)
	dishService := dish.NewService(dishRepo, ingredientRepo, scheduleRepo, r2Client)
	scheduleService := schedule.NewService(scheduleRepo)
	plannerService := planner.NewService(scheduleRepo, dishRepo, ingredientRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	ingredientHandler := ingredient.NewHandler(ingredientService)
	dishHandler := dish.NewHandler(dishService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	plannerHandler := planner.NewHandler(plannerService)

	// ───────────────────────── ROUTES ─────────────────────────
	api := r.Group("/api")

	api.POST("/login", authHandler.Login)

	// Read endpoints stay open: the calendar hangs on the kitchen wall.
	api.GET("/ingredients", ingredientHandler.List)
	api.GET("/dishes", dishHandler.List)
	api.GET("/dishes/:id/ingredients", dishHandler.GetComposition)
	api.GET("/cycle", scheduleHandler.GetCycle)
	api.GET("/overrides", scheduleHandler.ListOverrides)
	api.GET("/day/:date", plannerHandler.ResolveDay)
	api.GET("/calendar", plannerHandler.Calendar)
	api.GET("/shopping", plannerHandler.Shopping)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", authHandler.Me)

		protected.POST("/ingredients", ingredientHandler.Create)
		protected.PUT("/ingredients/:id", ingredientHandler.Update)
		protected.DELETE("/ingredients/:id", ingredientHandler.Delete)

		protected.POST("/dishes", dishHandler.Create)
		protected.PUT("/dishes/:id", dishHandler.Update)
		protected.DELETE("/dishes/:id", dishHandler.Delete)
		protected.PUT("/dishes/:id/ingredients", dishHandler.SetComposition)
		protected.POST("/dishes/:id/photo", dishHandler.UploadPhoto)

		protected.PUT("/cycle/:day_index", scheduleHandler.SetCycleDay)
		protected.PUT("/override/:date", scheduleHandler.SetOverride)
		protected.DELETE("/override/:date", scheduleHandler.ClearOverride)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
