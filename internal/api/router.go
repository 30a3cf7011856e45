package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/dicri/evidencetrack/docs"
	"github.com/dicri/evidencetrack/internal/api/handler"
	"github.com/dicri/evidencetrack/internal/api/middleware"
	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
	"github.com/dicri/evidencetrack/internal/core/security"
	"github.com/dicri/evidencetrack/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything NewRouter needs to assemble the API.
// Pool and Redis are optional; the readiness route is only mounted when
// both are present, which keeps httptest setups free of infrastructure.
type RouterConfig struct {
	Logger zerolog.Logger
	Tokens *security.TokenService

	AuthService   ports.AuthService
	CaseFiles     ports.CaseFileService
	EvidenceItems ports.EvidenceItemService
	Users         ports.UserService
	Roles         ports.RoleService
	Reports       ports.ReportService

	Pool  *pgxpool.Pool
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("evidencetrack"))

	validator := handler.NewRequestValidator()
	authHandler := handler.NewAuthHandler(cfg.AuthService, validator)
	caseFileHandler := handler.NewCaseFileHandler(cfg.CaseFiles, validator)
	evidenceHandler := handler.NewEvidenceItemHandler(cfg.EvidenceItems, validator)
	userHandler := handler.NewUserHandler(cfg.Users, validator)
	roleHandler := handler.NewRoleHandler(cfg.Roles, validator)
	reportHandler := handler.NewReportHandler(cfg.Reports, validator)

	authenticated := middleware.Auth(cfg.Tokens)
	technicianOrCoordinator := middleware.RequireRoles(domain.RoleTechnician, domain.RoleCoordinator)
	coordinatorOnly := middleware.RequireRoles(domain.RoleCoordinator)
	adminOrCoordinator := middleware.RequireRoles(domain.RoleAdministrator, domain.RoleCoordinator)

	// --- Service banner and operational endpoints ---
	e.GET("/", handler.Welcome)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if cfg.Pool != nil && cfg.Redis != nil {
		healthDepsHandler := handlers.NewHealthDependenciesHandler(cfg.Pool, cfg.Redis)
		e.GET("/health/ready", healthDepsHandler.Readiness)
	}

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authenticated)

	// --- Case files ---
	caseFiles := e.Group("/case-files", authenticated)
	caseFiles.POST("", caseFileHandler.Create, technicianOrCoordinator)
	caseFiles.GET("", caseFileHandler.List, technicianOrCoordinator)
	caseFiles.GET("/count/total", caseFileHandler.TotalCount, technicianOrCoordinator)
	caseFiles.GET("/:caseFileId", caseFileHandler.GetByID, technicianOrCoordinator)
	caseFiles.PUT("/:caseFileId", caseFileHandler.Update, technicianOrCoordinator)
	caseFiles.DELETE("/:caseFileId", caseFileHandler.Delete, coordinatorOnly)

	// --- Evidence items ---
	evidence := e.Group("/evidence-items", authenticated)
	evidence.POST("", evidenceHandler.Create, technicianOrCoordinator)
	evidence.GET("", evidenceHandler.List, technicianOrCoordinator)
	evidence.GET("/count", evidenceHandler.CountByCaseFile, technicianOrCoordinator)
	evidence.GET("/:evidenceItemId", evidenceHandler.GetByID, technicianOrCoordinator)
	evidence.PUT("/:evidenceItemId", evidenceHandler.Update, technicianOrCoordinator)
	evidence.DELETE("/:evidenceItemId", evidenceHandler.Delete, coordinatorOnly)

	// --- User administration ---
	users := e.Group("/users", authenticated, coordinatorOnly)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/count/total", userHandler.TotalCount)
	users.GET("/:userId", userHandler.GetByID)
	users.PUT("/:userId", userHandler.Update)
	users.DELETE("/:userId", userHandler.Delete)

	// --- Role administration ---
	roles := e.Group("/roles", authenticated, coordinatorOnly)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.List)
	roles.GET("/count/total", roleHandler.TotalCount)
	roles.GET("/:roleId", roleHandler.GetByID)
	roles.PUT("/:roleId", roleHandler.Update)
	roles.DELETE("/:roleId", roleHandler.Delete)

	// --- Reports ---
	reports := e.Group("/reports", authenticated, adminOrCoordinator)
	reports.GET("/overview", reportHandler.DashboardOverview)
	reports.GET("/case-files/status-by-day", reportHandler.CaseStatusByDay)
	reports.GET("/technicians/activity", reportHandler.TechnicianActivity)
	reports.GET("/evidence/density", reportHandler.EvidenceDensity)

	return e
}
