package api

import (
	"log"
	"net/http"

	"github.com/geomapa/geochem-viewer-go/internal/config"
	"github.com/geomapa/geochem-viewer-go/internal/handler"
	"github.com/geomapa/geochem-viewer-go/internal/middleware"
	"github.com/geomapa/geochem-viewer-go/internal/repository"
	"github.com/geomapa/geochem-viewer-go/internal/service"
	"github.com/geomapa/geochem-viewer-go/web"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires repositories, services and handlers into the gin engine.
func SetupRouter(cfg *config.Config, repo *repository.SampleRepository) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	datasetService := service.NewDatasetService(repo)
	mapService := service.NewMapService(repo)

	catalogHandler := handler.NewCatalogHandler(datasetService)
	mapHandler := handler.NewMapHandler(mapService)
	statsHandler := handler.NewStatsHandler(mapService)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Geochem Viewer API is running",
		})
	})

	// 单页查看器
	index, err := web.Index()
	if err != nil {
		log.Fatal("Failed to load embedded viewer:", err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))
	{
		api.GET("/elements", catalogHandler.GetElements)
		api.GET("/elements/:symbol/stats", statsHandler.GetElementStats)
		api.GET("/sample-types", catalogHandler.GetSampleTypes)

		viz := api.Group("/map")
		{
			viz.GET("/markers", mapHandler.GetMarkers)
		}
	}

	return r
}
