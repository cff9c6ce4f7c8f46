package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"meetplan/internal/cache"
	"meetplan/internal/config"
	"meetplan/internal/features/api_keys"
	"meetplan/internal/features/audit_logs"
	"meetplan/internal/features/meeting_dates"
	projects_controllers "meetplan/internal/features/projects/controllers"
	system_healthcheck "meetplan/internal/features/system/healthcheck"
	users_controllers "meetplan/internal/features/users/controllers"
	users_middleware "meetplan/internal/features/users/middleware"
	users_services "meetplan/internal/features/users/services"
	"meetplan/internal/storage"
	env_utils "meetplan/internal/util/env"
	"meetplan/internal/util/logger"
	_ "meetplan/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Meetplan Backend API
// @version 1.0
// @description API for planning meetings: projects, candidate dates, votes and attendance
// @termsOfService http://swagger.io/terms/

// @host localhost:4005
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()

	newPassword := flag.String("new-password", "", "Set a new password for the user")
	email := flag.String("email", "", "Email of the user to reset password")
	makeAdmin := flag.String("make-admin", "", "Email of the user to grant admin rights")
	flag.Parse()

	setUpDependencies()

	testCacheConnection(log)

	runMigrations(log)

	handlePasswordReset(log, *email, *newPassword)
	handleMakeAdmin(log, *makeAdmin)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:              host + ":" + config.GetEnv().ServerPort,
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// in-flight requests get 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// docs and health stay reachable without a client key
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	api := v1.Group("")
	if config.GetEnv().IsApiKeyRequired {
		api.Use(api_keys.ApiKeyMiddleware(api_keys.GetApiKeyService()))
	}

	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(api)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	protected := api.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	projects_controllers.GetMembershipController().RegisterRoutes(protected)
	meeting_dates.GetMeetingDateController().RegisterRoutes(protected)
	api_keys.GetApiKeyController().RegisterRoutes(protected)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
}

func testCacheConnection(log *slog.Logger) {
	log.Info("Testing cache connection...")

	if err := cache.Ping(); err != nil {
		log.Error("Failed to connect to cache", "error", err)
		os.Exit(1)
	}

	log.Info("Cache connection test successful")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	if err := storage.Migrate(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				api_keys.ApiKeyHeader,
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
			},
			AllowCredentials: true,
		}))
	}
}

func handlePasswordReset(log *slog.Logger, email, newPassword string) {
	if newPassword == "" {
		return
	}

	log.Info("Found reset password command - reseting password...")

	if email == "" {
		log.Info("No email provided, please provide an email via --email=\"some@email.com\" flag")
		os.Exit(1)
	}

	if err := users_services.GetUserService().ChangeUserPasswordByEmail(email, newPassword); err != nil {
		log.Error("Failed to reset password", "error", err)
		os.Exit(1)
	}

	log.Info("Password reset successfully")
	os.Exit(0)
}

func handleMakeAdmin(log *slog.Logger, email string) {
	if email == "" {
		return
	}

	if err := users_services.GetUserService().MakeAdminByEmail(email); err != nil {
		log.Error("Failed to grant admin rights", "error", err, "email", email)
		os.Exit(1)
	}

	log.Info("User is now an admin", "email", email)
	os.Exit(0)
}
