package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wfunc/anima-counter/internal/config"
	"github.com/wfunc/anima-counter/internal/middleware"
	"github.com/wfunc/anima-counter/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	services *service.Services
	log      *zap.Logger

	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	authHandler      *AuthHandler
	profileHandler   *ProfileHandler
	gameStateHandler *GameStateHandler
	spellHandler     *SpellHandler
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if cfg != nil {
		if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
			log.Warn("可信代理配置无效", zap.Error(err))
		}
	}
	registerValidator()

	var svcCfg *service.Config
	if cfg != nil {
		svcCfg = service.ConfigFrom(cfg)
	}
	services := service.NewServices(db, svcCfg, log)

	r := &Router{
		engine:           engine,
		db:               db,
		cfg:              cfg,
		services:         services,
		log:              log,
		authMiddleware:   middleware.NewAuthMiddleware(services.Auth),
		authHandler:      NewAuthHandler(services.Auth),
		profileHandler:   NewProfileHandler(services.Profile),
		gameStateHandler: NewGameStateHandler(services.GameState),
		spellHandler:     NewSpellHandler(services.Spellbook),
	}
	if cfg != nil && cfg.Security.RateLimit.Enabled {
		r.rateLimiter = middleware.NewRateLimiter(cfg.Security.RateLimit)
	}

	r.setupMiddleware()
	r.setupRoutes()
	return r
}

// registerValidator 绑定错误中的字段名使用JSON名称
func registerValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(service.JSONFieldName)
	}
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.Recovery())

	corsCfg := config.CORSConfig{}
	if r.cfg != nil {
		corsCfg = r.cfg.Security.CORS
	}
	r.engine.Use(middleware.CORS(corsCfg))

	if r.cfg != nil && r.cfg.Server.MaxBodyBytes > 0 {
		r.engine.Use(limitBody(r.cfg.Server.MaxBodyBytes))
	}
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthCheck)
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Middleware())
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/verify", r.authMiddleware.RequireAuth(), r.authHandler.Verify)
	}

	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())

	profiles := authed.Group("/profiles")
	{
		profiles.GET("", r.profileHandler.List)
		profiles.POST("", r.profileHandler.Create)
		profiles.GET("/:profileId", r.profileHandler.Get)
		profiles.PUT("/:profileId", r.profileHandler.Rename)
		profiles.DELETE("/:profileId", r.profileHandler.Delete)
	}

	// 以下路由均校验档案归属
	owned := middleware.RequireProfile(r.services.Profile)

	gamestate := authed.Group("/gamestate/:profileId", owned)
	{
		gamestate.GET("", r.gameStateHandler.Get)
		gamestate.PUT("", r.gameStateHandler.Update)
		gamestate.POST("/reset", r.gameStateHandler.Reset)
		gamestate.GET("/snapshot", r.gameStateHandler.Snapshot)
		gamestate.POST("/actions", r.gameStateHandler.Apply)
	}

	spells := authed.Group("/spells/:profileId", owned)
	{
		spells.GET("", r.spellHandler.ListSpells)
		spells.POST("", r.spellHandler.CreateSpell)
		spells.DELETE("/:spellId", r.spellHandler.DeleteSpell)
	}

	ready := authed.Group("/ready-to-cast/:profileId", owned)
	{
		ready.GET("", r.spellHandler.ListReadyToCast)
		ready.POST("", r.spellHandler.CreateReadyToCast)
		ready.DELETE("", r.spellHandler.ClearReadyToCast)
		ready.DELETE("/:id", r.spellHandler.DeleteReadyToCast)
	}

	maintained := authed.Group("/spell-mantain/:profileId", owned)
	{
		maintained.GET("", r.spellHandler.ListMaintained)
		maintained.POST("", r.spellHandler.CreateMaintained)
		maintained.DELETE("", r.spellHandler.ClearMaintained)
		maintained.DELETE("/:id", r.spellHandler.DeleteMaintained)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "接口不存在",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})
}

// limitBody 限制请求体大小
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Services 获取服务集合
func (r *Router) Services() *service.Services {
	return r.services
}

// Close 释放路由持有的后台资源
func (r *Router) Close() {
	if r.rateLimiter != nil {
		r.rateLimiter.Stop()
	}
}
