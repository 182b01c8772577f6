package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/bootstrap"
	"vecindia.com/denunciasbackend/internal/config"
	"vecindia.com/denunciasbackend/internal/handler"
	"vecindia.com/denunciasbackend/internal/metrics"
	"vecindia.com/denunciasbackend/internal/middleware"
	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/internal/service"
	"vecindia.com/denunciasbackend/internal/token"
	"vecindia.com/denunciasbackend/pkg/database"
	"vecindia.com/denunciasbackend/pkg/logger"
	"vecindia.com/denunciasbackend/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.AppEnv,
		ServiceName: "denuncias-backend",
	}); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}

	db, err := database.Connect(database.Options{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
	})
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		zap.L().Fatal("failed to seed roles", zap.Error(err))
	}
	if err := bootstrap.SeedClasificaciones(db); err != nil {
		zap.L().Fatal("failed to seed clasificaciones", zap.Error(err))
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUsuario(db); err != nil {
			zap.L().Fatal("failed to seed admin user", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		zap.L().Fatal("failed to initialize cloudinary storage", zap.Error(err))
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	usuarioRepo := repository.NewUsuarioRepository(db)
	rolRepo := repository.NewRolRepository(db)
	clasificacionRepo := repository.NewClasificacionRepository(db)
	denunciaRepo := repository.NewDenunciaRepository(db)

	authService := service.NewAuthService(usuarioRepo, rolRepo, tokens, rdb, cfg.LoginLockout, cfg.DefaultRoleName)
	authHandler := handler.NewAuthHandler(authService)

	usuarioService := service.NewUsuarioService(usuarioRepo, rolRepo)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)

	profileService := service.NewProfileService(usuarioRepo)
	profileHandler := handler.NewProfileHandler(profileService)

	rolService := service.NewRolService(rolRepo)
	rolHandler := handler.NewRolHandler(rolService)

	clasificacionService := service.NewClasificacionService(clasificacionRepo)
	clasificacionHandler := handler.NewClasificacionHandler(clasificacionService)

	denunciaService := service.NewDenunciaService(denunciaRepo, clasificacionRepo, imageStorage, cfg.CloudinaryFolder)
	denunciaHandler := handler.NewDenunciaHandler(denunciaService)

	authMiddleware := middleware.NewAuthMiddleware(tokens, usuarioRepo)
	httpMetrics := metrics.NewHTTPMetrics("denuncias-backend")

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(httpMetrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
	}

	protegido := api.Group("", authMiddleware.RequireAuth())
	{
		admin := protegido.Group("", authMiddleware.RequireRoles(model.RolAdministrador))
		{
			admin.GET("/roles", rolHandler.List)
			admin.POST("/roles", rolHandler.Create)
			admin.GET("/roles/:id", rolHandler.Get)
			admin.DELETE("/roles/:id", rolHandler.Delete)

			admin.POST("/clasificaciones", clasificacionHandler.Create)
			admin.PUT("/clasificaciones/:id", clasificacionHandler.Update)
			admin.DELETE("/clasificaciones/:id", clasificacionHandler.Delete)

			admin.GET("/usuarios", usuarioHandler.List)
			admin.POST("/usuarios", usuarioHandler.Create)
			admin.GET("/usuarios/:id", usuarioHandler.Get)
			admin.PUT("/usuarios/:id", usuarioHandler.Update)
			admin.DELETE("/usuarios/:id", usuarioHandler.Delete)
			admin.PUT("/usuarios/:id/rol", usuarioHandler.AsignarRol)
		}

		protegido.GET("/clasificaciones", clasificacionHandler.List)
		protegido.GET("/clasificaciones/:id", clasificacionHandler.Get)

		protegido.GET("/profile", profileHandler.Get)
		protegido.PUT("/profile/edit", profileHandler.Update)

		protegido.GET("/denuncias", denunciaHandler.List)
		protegido.POST("/denuncias", denunciaHandler.Create)
		protegido.GET("/denuncias/:id", denunciaHandler.Get)
		protegido.PUT("/denuncias/:id", denunciaHandler.Update)
		protegido.DELETE("/denuncias/:id", denunciaHandler.Delete)
	}

	zap.L().Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("server exited with error", zap.Error(err))
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Clasificacion{},
		&model.Denuncia{},
		&model.ImagenDenuncia{},
	)
}
