package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"intent_search/config"
	"intent_search/db"
	_ "intent_search/docs" // 导入 swagger 文档
	"intent_search/handlers"
	"intent_search/logger"
	"intent_search/models"
	"intent_search/repository"
	"intent_search/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// 目录数据走MySQL时才建立连接，文件模式下不依赖数据库
	if cfg.Catalog.Source == "mysql" {
		if err := db.InitMySQLWithConfig(cfg); err != nil {
			logger.Error("初始化MySQL失败", "error", err)
			os.Exit(1)
		}
		logger.Info("MySQL连接成功",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	}

	snapshot, err := repository.LoadSnapshot(cfg)
	if err != nil {
		logger.Error("目录数据加载失败", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}
	logger.Info("目录数据加载完成",
		"items", len(snapshot.Items),
		"spares", len(snapshot.Spares),
		"orders", len(snapshot.Orders),
		"intents", len(snapshot.Dependencies.Intents))

	// 组装服务：共用一份词表和打分器
	taxonomy := models.DefaultTaxonomy()
	classifier := services.NewClassifier(taxonomy)
	scorer := services.NewCompatibilityScorer(services.DefaultScoreWeights(), taxonomy)
	pipeline := services.NewRankingPipeline(scorer, cfg.Search.MinScore, cfg.Search.DefaultMaxResults)

	svc := &handlers.Services{
		Search:   services.NewSearchService(snapshot.Items, classifier, cfg.Search.CacheCapacity, cfg.Search.DefaultMaxResults),
		Spares:   services.NewSparePartService(snapshot, classifier, pipeline),
		Resolver: services.NewDependencyResolver(snapshot.Dependencies, taxonomy),
	}

	if cfg.Search.WarmThemes {
		svc.Search.WarmThemeCache(cfg.Search.WarmConcurrency)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, svc)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("服务器启动", "address", serverAddr)
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}
