package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stash-backend/internal/handler/api"
	"stash-backend/internal/handler/middleware"
	"stash-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	receiptHandler *api.ReceiptHandler,
	walletHandler *api.WalletHandler,
	gamificationHandler *api.GamificationHandler,
	insightHandler *api.InsightHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, receiptHandler, walletHandler, gamificationHandler, insightHandler, dashboardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	receiptHandler *api.ReceiptHandler,
	walletHandler *api.WalletHandler,
	gamificationHandler *api.GamificationHandler,
	insightHandler *api.InsightHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Upload and scan accept anonymous callers; the identity only
		// scopes where the processed receipt is persisted.
		receipts := apiGroup.Group("/receipts")
		receipts.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(receipts, []route{
				{Method: http.MethodPost, Path: "/upload", Handler: receiptHandler.Upload},
				{Method: http.MethodPost, Path: "/process", Handler: receiptHandler.Process},
				{Method: http.MethodPost, Path: "/scan", Handler: receiptHandler.Scan},
			})
		}

		wallet := apiGroup.Group("/wallet")
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/vouchers", Handler: walletHandler.Vouchers},
				{Method: http.MethodGet, Path: "/integration", Handler: walletHandler.Integration},
			})

			walletRequired := wallet.Group("")
			walletRequired.Use(authMiddleware.RequireAuth())
			addRoutes(walletRequired, []route{
				{Method: http.MethodPost, Path: "/redeem", Handler: walletHandler.Redeem},
				{Method: http.MethodGet, Path: "/redemptions", Handler: walletHandler.Redemptions},
				{Method: http.MethodPost, Path: "/passes", Handler: walletHandler.AddPass},
			})
		}

		gamification := apiGroup.Group("/gamification")
		gamification.Use(authMiddleware.RequireAuth())
		{
			addRoutes(gamification, []route{
				{Method: http.MethodPost, Path: "/points", Handler: gamificationHandler.AwardPoints},
			})
		}

		insights := apiGroup.Group("/insights")
		insights.Use(authMiddleware.RequireAuth())
		{
			addRoutes(insights, []route{
				{Method: http.MethodPost, Path: "/anomaly", Handler: insightHandler.DetectAnomaly},
				{Method: http.MethodPost, Path: "/forecast", Handler: insightHandler.ForecastBudget},
			})
		}

		analytics := apiGroup.Group("/analytics")
		analytics.Use(authMiddleware.RequireAuth())
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "/spending-report", Handler: dashboardHandler.SpendingReport},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/levels", Handler: dashboardHandler.Levels},
		})

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "", Handler: dashboardHandler.Dashboard},
			})
		}

		me := apiGroup.Group("/users/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/progress", Handler: gamificationHandler.Progress},
				{Method: http.MethodGet, Path: "/badges", Handler: gamificationHandler.Badges},
				{Method: http.MethodGet, Path: "/notifications", Handler: gamificationHandler.Notifications},
				{Method: http.MethodGet, Path: "/receipts", Handler: gamificationHandler.RecentReceipts},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
