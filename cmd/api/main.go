package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/citizenconnect/internal/application"
	appanalysis "github.com/bryanwahyu/citizenconnect/internal/application/analysis"
	apppitches "github.com/bryanwahyu/citizenconnect/internal/application/pitches"
	appprojects "github.com/bryanwahyu/citizenconnect/internal/application/projects"
	"github.com/bryanwahyu/citizenconnect/internal/config"
	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	aiopenai "github.com/bryanwahyu/citizenconnect/internal/infra/ai/openai"
	"github.com/bryanwahyu/citizenconnect/internal/infra/httpserver"
	"github.com/bryanwahyu/citizenconnect/internal/infra/memory"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.AI.APIKey == "" {
		log.Println("warning: no AI api key configured, vetting and crawl will return no data")
	}

	// init in-memory stores; state lives for the process lifetime only
	var seed []*domain.Project
	if cfg.Seed {
		seed = domain.SeedProjects()
	}
	projectRepo := memory.NewProjectRepository(seed)
	analysisCache := memory.NewAnalysisCache()
	pitchRepo := memory.NewPitchRepository()

	// init AI gateway
	gateway := aiopenai.NewClient(cfg.AI.APIKey, cfg.AI.Model)

	// init services
	projectsSvc := &appprojects.Service{
		Repo:    projectRepo,
		Gateway: gateway,
		Clock:   application.SystemClock{},
	}
	analysisSvc := appanalysis.NewService(gateway, analysisCache)
	pitchesSvc := &apppitches.Service{
		Repo:  pitchRepo,
		Clock: application.SystemClock{},
	}

	// init router
	handler := httpserver.NewRouter(projectsSvc, analysisSvc, pitchesSvc, httpserver.Options{
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		RateLimitCapacity:   cfg.RateLimit.Capacity,
		RateLimitRefillRate: cfg.RateLimit.RefillRate,
		AIAPIKey:            cfg.AI.APIKey,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // vetting calls block on the AI provider
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
