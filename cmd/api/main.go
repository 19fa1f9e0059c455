package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrition-estimator/internal/api"
	"nutrition-estimator/internal/core/nutrition"
	"nutrition-estimator/internal/core/recipe"
	"nutrition-estimator/internal/infrastructure/config"
	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.Bool("recipe_api_enabled", cfg.RecipeAPI.Enabled),
		zap.String("recipe_api_key", config.MaskAPIKey(cfg.RecipeAPI.APIKey)),
		zap.String("recipe_api_model", cfg.RecipeAPI.Model),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// Reference tables. A missing or malformed file falls back to the
	// built-in tables so the service always starts.
	nutritionTable, err := data.LoadNutritionTable(cfg.Data.NutritionTable)
	if err != nil {
		common.LogError("failed to load nutrition table, using builtin",
			zap.Error(err),
			zap.String("path", cfg.Data.NutritionTable),
		)
		nutritionTable = data.BuiltinNutritionTable()
	}
	servingTable, err := data.LoadServingTable(cfg.Data.HouseholdTable)
	if err != nil {
		common.LogError("failed to load serving table, using builtin",
			zap.Error(err),
			zap.String("path", cfg.Data.HouseholdTable),
		)
		servingTable = data.BuiltinServingTable()
	}
	common.LogInfo("reference tables ready",
		zap.Int("nutrition_entries", nutritionTable.Len()),
		zap.Int("serving_categories", servingTable.Len()),
	)

	recipeCache, err := recipe.NewCache(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize recipe cache", zap.Error(err))
	}
	if recipeCache != nil {
		defer recipeCache.Close()
	}

	source := recipe.NewLLMSource(cfg, recipeCache)
	estimator := nutrition.New(source, nutritionTable, servingTable)

	router, err := api.SetupRouter(cfg, estimator)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
