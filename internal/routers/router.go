package routers

import (
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/app"
	"github.com/haierkeys/fast-file-share-service/internal/middleware"
	"github.com/haierkeys/fast-file-share-service/internal/routers/api_router"
	"github.com/haierkeys/fast-file-share-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/s/",
		FillInterval: time.Second,
		Capacity:     20,
		Quantum:      20,
	},
	limiter.BucketRule{
		Key:          "/api/link",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建对外 HTTP 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		fileHandler := api_router.NewFileHandler(appContainer)
		shareHandler := api_router.NewShareHandler(appContainer)
		linkHandler := api_router.NewLinkHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 无需认证的接口
		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)

		auth := middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)

		// 文件元数据
		api.Use(auth).POST("/file", fileHandler.Register)
		api.Use(auth).GET("/files", fileHandler.List)
		api.Use(auth).DELETE("/file", fileHandler.Remove)

		// 用户/组分享
		api.Use(auth).GET("/shares", shareHandler.List)
		api.Use(auth).POST("/share", shareHandler.Create)
		api.Use(auth).PUT("/share", shareHandler.Update)
		api.Use(auth).DELETE("/share", shareHandler.Remove)

		// 公开链接
		api.Use(auth).POST("/link", linkHandler.Create)
		api.Use(auth).PUT("/link", linkHandler.Update)

		// 系统信息
		api.Use(auth).GET("/health/system", healthHandler.System)
	}

	// 公开链接匿名访问入口
	s := r.Group("/s")
	{
		s.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		s.Use(middleware.RateLimiter(methodLimiters))
		s.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		s.Use(middleware.Cors())
		s.Use(middleware.LangWithTranslator(uni))
		s.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		s.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		linkHandler := api_router.NewLinkHandler(appContainer)
		s.GET("/:token", linkHandler.Resolve)
		s.POST("/:token", linkHandler.Resolve)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
