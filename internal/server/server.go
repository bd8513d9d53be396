package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/callcenterinsight/insights/internal/analysis"
	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/callcenterinsight/insights/internal/call"
	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/callcenterinsight/insights/internal/config"
	"github.com/callcenterinsight/insights/internal/merchant"
	merchantdomain "github.com/callcenterinsight/insights/internal/merchant/domain"
	"github.com/callcenterinsight/insights/internal/search"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	call.Module,
	analysis.Module,
	merchant.Module,
	search.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   cfg.AppVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger) *gin.Engine {
	return NewEngine(cfg, log)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	callSvc     calldomain.Service
	viewSvc     analysisdomain.ViewService
	baseSvc     analysisdomain.BaseResultService
	merchantSvc merchantdomain.Service
	searchCli   *search.Client
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	CallSvc     calldomain.Service
	ViewSvc     analysisdomain.ViewService
	BaseSvc     analysisdomain.BaseResultService
	MerchantSvc merchantdomain.Service
	SearchCli   *search.Client
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("http.server"),
		callSvc:     p.CallSvc,
		viewSvc:     p.ViewSvc,
		baseSvc:     p.BaseSvc,
		merchantSvc: p.MerchantSvc,
		searchCli:   p.SearchCli,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/analysis-results", s.ListAnalysisResults)
	api.GET("/analysis-results/:call_id", s.GetAnalysisResultByCallID)

	api.GET("/calls", s.ListCalls)
	api.GET("/calls/:call_id", s.GetCallByID)
	api.POST("/calls", s.CreateCall)

	api.GET("/base-analysis-results", s.ListBaseResults)
	api.GET("/base-analysis-results/:call_id", s.GetBaseResultByCallID)
	api.POST("/base-analysis-results", s.CreateBaseResult)

	api.GET("/merchants/complete/:merchant_id", s.GetMerchantComplete)
	api.GET("/merchants/complete", s.GetMerchantsByIDs)
	api.POST("/merchants/complete/batch", s.GetMerchantCompleteBatch)
	api.GET("/merchants/search/phone/:phone", s.GetMerchantByPhone)

	api.GET("/search/health", s.SearchHealth)
	api.GET("/search/collections", s.ListSearchCollections)
	api.GET("/search/collections/:name", s.GetSearchCollectionInfo)
	api.POST("/search/collections/:name/search", s.SearchDocuments)
	api.POST("/search/collections/:name/search/text", s.TextSearchDocuments)
	api.POST("/search/collections/:name/search/recommend", s.RecommendDocuments)
	api.POST("/search/collections/:name/search/batch", s.BatchSearchDocuments)
}
