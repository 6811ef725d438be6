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

	_ "github.com/vetcare/clinic-api/docs"
	"github.com/vetcare/clinic-api/internal/api/handler"
	"github.com/vetcare/clinic-api/internal/api/middleware"
	"github.com/vetcare/clinic-api/internal/core/ports"
	"github.com/vetcare/clinic-api/internal/core/service"
	mongodb "github.com/vetcare/clinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vetcare/clinic-api/internal/infrastructure/db/redis"
	"github.com/vetcare/clinic-api/internal/infrastructure/storage"
	"github.com/vetcare/clinic-api/internal/token"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, images *storage.ImageStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tutorRepo := mongodb.NewTutorRepository(db)
	patientRepo := mongodb.NewPatientRepository(db, tutorRepo)
	doctorRepo := mongodb.NewDoctorRepository(db)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authService := service.NewAuthService(userRepo, issuer, throttle, log)
	userService := service.NewUserService(userRepo, images, log)
	tutorService := service.NewTutorService(tutorRepo, log)
	patientService := service.NewPatientService(patientRepo, tutorRepo, log)
	doctorService := service.NewDoctorService(doctorRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tutorHandler := handler.NewTutorHandler(tutorService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)

	authRequired := middleware.Auth(issuer, userRepo)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleVeterinarian)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- User routes (registration open, the rest behind the gate) ---
	users := e.Group("/usuarios")
	users.POST("", userHandler.Register)
	users.GET("/:id", userHandler.Get, authRequired)
	users.PUT("/:id", userHandler.Update, authRequired)
	users.DELETE("/:id", userHandler.Delete, authRequired)
	users.POST("/:id/imagen", userHandler.UploadImage, authRequired)

	// --- Clinic routes ---
	tutors := e.Group("/index/tutores", authRequired)
	tutors.POST("", tutorHandler.Create)
	tutors.GET("", tutorHandler.List)
	tutors.PUT("/:id", tutorHandler.Update)
	tutors.DELETE("/:id", tutorHandler.Delete)

	patients := e.Group("/index/pacientes", authRequired)
	patients.POST("", patientHandler.Create)
	patients.GET("", patientHandler.List)
	patients.GET("/tutor/:tutor_id", patientHandler.ListByTutor)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Delete)

	doctors := e.Group("/index/doctores", authRequired)
	doctors.GET("", doctorHandler.List)
	doctors.POST("", doctorHandler.Create, staffOnly)
	doctors.PUT("/:id", doctorHandler.Update, staffOnly)
	doctors.DELETE("/:id", doctorHandler.Delete, staffOnly)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"mensaje": "API Veterinaria funcionando"})
	})

	return e
}
