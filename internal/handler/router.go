package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"referral-pricing/internal/handler/api"
	"referral-pricing/internal/handler/middleware"
	"referral-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Referral    *api.ReferralHandler
	Billing     *api.BillingHandler
	PriceChange *api.PriceChangeHandler
	Admin       *api.AdminHandler
	Metrics     http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	if h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/webhooks/stripe", h.Billing.StripeWebhook)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/referrals/qualified", Handler: h.Referral.Qualified},
			{Method: http.MethodPost, Path: "/billing/events", Handler: h.Billing.Event},
		})

		subscriptions := apiGroup.Group("/subscriptions/:id")
		addRoutes(subscriptions, []route{
			{Method: http.MethodGet, Path: "/price-changes", Handler: h.PriceChange.ListBySubscription},
			{Method: http.MethodGet, Path: "/price-change-history", Handler: h.PriceChange.History},
		})

		priceChanges := apiGroup.Group("/price-changes")
		addRoutes(priceChanges, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.PriceChange.Stats},
			{Method: http.MethodGet, Path: "/outcomes", Handler: h.PriceChange.Outcomes},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/retry-sweep", Handler: h.Admin.RetrySweep},
		})
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
