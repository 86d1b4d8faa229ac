package router

import (
	"net/http"

	apphttp "phonedesk/internal/http"
	"phonedesk/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// New builds the gin engine: middleware chain, health endpoint, and one
// route group per registered module.
func New(app *apphttp.App) *gin.Engine {
	cfg := app.Config

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(cfg.GetRateLimitRPS()), cfg.GetRateLimitBurst(), app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/healthz", func(c *gin.Context) {
		meta := gin.H{}
		if app.Readiness != nil {
			meta["regions"] = app.Readiness.Count()
		}
		httpkit.OKMeta(c, gin.H{"status": "ok"}, meta)
	})

	v1 := engine.Group("/api/v1")

	// Auth is opt-in: without a configured secret the API is open.
	protected := v1
	if cfg.GetAuthSecret() != "" {
		protected = v1.Group("")
		protected.Use(httpkit.AuthRequired(cfg))
	}

	ctx := &apphttp.RouterContext{
		Engine:      engine,
		V1:          v1,
		Protected:   protected,
		Config:      cfg,
		RateLimiter: limiter,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("registered module routes", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", httpkit.RequestIDHeader}
	corsCfg.AllowCredentials = cfg.GetCORSAllowCreds()

	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}

	return corsCfg
}
