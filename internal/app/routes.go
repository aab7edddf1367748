package app

import (
	"github.com/PremjitDas/Task-Management-App/internal/auth"
	"github.com/PremjitDas/Task-Management-App/internal/cache"
	"github.com/PremjitDas/Task-Management-App/internal/config"
	"github.com/PremjitDas/Task-Management-App/internal/handlers"
	"github.com/PremjitDas/Task-Management-App/internal/repo"
	"github.com/PremjitDas/Task-Management-App/internal/service"
	"github.com/PremjitDas/Task-Management-App/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, codec)
	authHandler := handlers.NewAuthHandler(userSvc, codec.TTL())
	gate := auth.RequireAuth(codec, userRepo)
	registerUserRoutes(api, authHandler, gate)

	protected := api.Group("", gate)
	taskRepo := repo.NewPGTaskRepo(db)
	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(taskRepo, taskCache)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	registerTaskRoutes(protected, taskHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task Management API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks/add", h.Add)
	api.GET("/tasks/all", h.List)
	api.PUT("/tasks/update/:taskId", h.Update)
	api.PUT("/tasks/toggle/:taskId", h.Toggle)
	api.DELETE("/tasks/delete/:taskId", h.Delete)
}

// Logout runs behind the gate: the session must still be valid to end it.
func registerUserRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, gate gin.HandlerFunc) {
	api.POST("/users/register", h.Register)
	api.POST("/users/login", h.Login)
	api.POST("/users/logout", gate, h.Logout)
}
