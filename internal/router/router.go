package router

import (
	"time"

	"assettrack/internal/config"
	"assettrack/internal/handler"
	"assettrack/internal/middleware"
	"assettrack/internal/repository"
	"assettrack/internal/service"
	"assettrack/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrgRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	disposalRepo := repository.NewDisposalRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	valuationSvc := service.NewValuationService()
	historySvc := service.NewHistoryService(historyRepo)
	orgSvc := service.NewOrgService(orgRepo)
	assetSvc := service.NewAssetService(assetRepo, orgRepo, historySvc, valuationSvc)
	workflowSvc := service.NewWorkflowService(
		transferRepo, disposalRepo, assetRepo, sequenceRepo,
		userRepo, notificationRepo, historySvc, valuationSvc, dispatcher,
	)
	reportSvc := service.NewReportService(assetRepo, valuationSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	orgH := handler.NewOrgHandler(orgSvc)
	assetsH := handler.NewAssetsHandler(assetSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	workflowsH := handler.NewWorkflowsHandler(workflowSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	qrH := handler.NewQRHandler(assetSvc, rdb, time.Duration(cfg.QRLookupCacheTTLSeconds)*time.Second)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// QR lookup — no auth required, rate-limited
	r.GET("/v1/qr/:code", middleware.RateLimiter(60, time.Minute), qrH.Lookup)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		anyRole := middleware.RequireRole("admin", "manager", "staff")
		managerUp := middleware.RequireRole("admin", "manager")
		adminOnly := middleware.RequireRole("admin")

		// Assets — everyone reads, managers write
		v1.GET("/assets", anyRole, assetsH.List)
		v1.GET("/assets/:id", anyRole, assetsH.Get)
		v1.GET("/assets/:id/history", anyRole, historyH.AssetHistory)
		v1.GET("/assets/:id/book-value", anyRole, assetsH.BookValue)
		v1.GET("/assets/:id/depreciation-schedule", anyRole, assetsH.Schedule)
		v1.POST("/assets", managerUp, assetsH.Create)
		v1.PATCH("/assets/:id", managerUp, assetsH.Update)
		v1.POST("/assets/:id/move", managerUp, assetsH.Move)
		v1.DELETE("/assets/:id", adminOnly, assetsH.Delete)

		// Transfers — staff submit and cancel; managers decide and complete
		v1.POST("/transfers", anyRole, workflowsH.SubmitTransfer)
		v1.GET("/transfers", anyRole, workflowsH.ListTransfers)
		v1.GET("/transfers/:id", anyRole, workflowsH.GetTransfer)
		v1.POST("/transfers/:id/approve", managerUp, workflowsH.ApproveTransfer)
		v1.POST("/transfers/:id/reject", managerUp, workflowsH.RejectTransfer)
		v1.POST("/transfers/:id/cancel", anyRole, workflowsH.CancelTransfer)
		v1.POST("/transfers/:id/complete", managerUp, workflowsH.CompleteTransfer)

		// Disposals — same split as transfers
		v1.POST("/disposals", anyRole, workflowsH.SubmitDisposal)
		v1.GET("/disposals", anyRole, workflowsH.ListDisposals)
		v1.GET("/disposals/:id", anyRole, workflowsH.GetDisposal)
		v1.POST("/disposals/:id/approve", managerUp, workflowsH.ApproveDisposal)
		v1.POST("/disposals/:id/reject", managerUp, workflowsH.RejectDisposal)
		v1.POST("/disposals/:id/cancel", anyRole, workflowsH.CancelDisposal)
		v1.POST("/disposals/:id/complete", managerUp, workflowsH.CompleteDisposal)

		// Reports
		v1.GET("/reports/financial-summary", managerUp, reportsH.FinancialSummary)

		// Org reference data — everyone reads, admins write
		v1.GET("/locations", anyRole, orgH.ListLocations)
		v1.GET("/departments", anyRole, orgH.ListDepartments)
		v1.GET("/categories", anyRole, orgH.ListCategories)
		v1.GET("/vendors", anyRole, orgH.ListVendors)
		v1.POST("/locations", adminOnly, orgH.CreateLocation)
		v1.POST("/departments", adminOnly, orgH.CreateDepartment)
		v1.POST("/categories", adminOnly, orgH.CreateCategory)
		v1.POST("/vendors", adminOnly, orgH.CreateVendor)

		// Users
		v1.POST("/users", adminOnly, authH.CreateUser)
		v1.GET("/users", adminOnly, authH.ListUsers)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
