package main

import (
	"log"
	"path/filepath"

	"github.com/geomapa/geochem-viewer-go/internal/api"
	"github.com/geomapa/geochem-viewer-go/internal/config"
	"github.com/geomapa/geochem-viewer-go/internal/database"
	"github.com/geomapa/geochem-viewer-go/internal/loader"
	"github.com/geomapa/geochem-viewer-go/internal/repository"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.NewMigrationManager(db, cfg.MigrationsPath).RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// 载入数据集
	repo := repository.NewSampleRepository(db)
	if err := ingestDataset(cfg, repo); err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	// 初始化路由
	router := api.SetupRouter(cfg, repo)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// ingestDataset loads the CSV into the samples table once per source path.
// The input is treated as static for the process lifetime, so a path that
// was already ingested is never re-read and the cache is never invalidated.
func ingestDataset(cfg *config.Config, repo *repository.SampleRepository) error {
	sourcePath, err := filepath.Abs(cfg.DataPath)
	if err != nil {
		return err
	}

	loaded, err := repo.HasDataset(sourcePath)
	if err != nil {
		return err
	}
	if loaded {
		count, err := repo.Count()
		if err != nil {
			return err
		}
		log.Printf("[Loader] Dataset already cached: %s (%d samples)", sourcePath, count)
		return nil
	}

	samples, err := loader.Load(sourcePath)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		log.Printf("[Loader] Warning: clean table is empty after cleaning %s", sourcePath)
	}

	if err := repo.SaveDataset(sourcePath, samples); err != nil {
		return err
	}
	log.Printf("[Loader] Ingested %d clean samples from %s", len(samples), sourcePath)
	return nil
}
