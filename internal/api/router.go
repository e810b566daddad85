package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/edugestion/school-records/docs"
	"github.com/edugestion/school-records/internal/api/handler"
	"github.com/edugestion/school-records/internal/api/middleware"
	"github.com/edugestion/school-records/internal/core/service"
	"github.com/edugestion/school-records/internal/infrastructure/config"
	mongodb "github.com/edugestion/school-records/internal/infrastructure/db/mongo"
	redisdb "github.com/edugestion/school-records/internal/infrastructure/db/redis"
	"github.com/edugestion/school-records/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, pool *queue.Pool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("school"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	gradeRepo := mongodb.NewGradeRepository(db)

	hasher := service.NewBcryptHasher(cfg.BcryptCost, pool)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	studentService := service.NewStudentService(studentRepo, log)
	courseService := service.NewCourseService(courseRepo, log)
	gradeService := service.NewGradeService(gradeRepo, studentRepo, courseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	courseHandler := handler.NewCourseHandler(courseService)
	gradeHandler := handler.NewGradeHandler(gradeService)

	authRequired := middleware.Auth(tokens, userRepo)
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)

	// --- API index ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "School Records API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"auth":     "/api/auth",
				"students": "/api/estudiantes",
				"courses":  "/api/cursos",
				"grades":   "/api/calificaciones",
			},
		})
	})

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/registro", authHandler.Register)
	auth.POST("/login", authHandler.Login, middleware.RateLimit(loginLimiter, log))
	auth.GET("/perfil", authHandler.Profile, authRequired)
	auth.PUT("/cambiar-password", authHandler.ChangePassword, authRequired)

	// --- Resource routes, gated per the role policy table ---
	students := apiGroup.Group("/estudiantes", authRequired)
	students.GET("", studentHandler.List, middleware.RBAC(readRoles...))
	students.GET("/:id", studentHandler.Get, middleware.RBAC(readRoles...))
	students.POST("", studentHandler.Create, middleware.RBAC(writeRoles...))
	students.PUT("/:id", studentHandler.Update, middleware.RBAC(writeRoles...))
	students.DELETE("/:id", studentHandler.Delete, middleware.RBAC(deleteRoles...))

	courses := apiGroup.Group("/cursos", authRequired)
	courses.GET("", courseHandler.List, middleware.RBAC(readRoles...))
	courses.GET("/:id", courseHandler.Get, middleware.RBAC(readRoles...))
	courses.POST("", courseHandler.Create, middleware.RBAC(writeRoles...))
	courses.PUT("/:id", courseHandler.Update, middleware.RBAC(writeRoles...))
	courses.DELETE("/:id", courseHandler.Delete, middleware.RBAC(deleteRoles...))

	grades := apiGroup.Group("/calificaciones", authRequired)
	grades.GET("", gradeHandler.List, middleware.RBAC(readRoles...))
	grades.GET("/:id", gradeHandler.Get, middleware.RBAC(readRoles...))
	grades.POST("", gradeHandler.Create, middleware.RBAC(writeRoles...))
	grades.PUT("/:id", gradeHandler.Update, middleware.RBAC(writeRoles...))
	grades.DELETE("/:id", gradeHandler.Delete, middleware.RBAC(deleteRoles...))

	return e
}
