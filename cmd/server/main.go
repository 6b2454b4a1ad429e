package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evolverse/api/internal/config"
	"github.com/evolverse/api/internal/handler"
	"github.com/evolverse/api/internal/middleware"
	"github.com/evolverse/api/internal/repository"
	"github.com/evolverse/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories (fixture-seeded at construction)
	userRepo := repository.NewUserRepository()
	domainRepo := repository.NewOverscaleDomainRepository()
	societyRepo := repository.NewHiddenSocietyRepository()
	actorRepo := repository.NewWarActorRepository()
	mallRepo := repository.NewMallNodeRepository()
	productRepo := repository.NewMarketProductRepository()
	ritualRepo := repository.NewCeremonialRitualRepository()
	chapterRepo := repository.NewStoryChapterRepository()
	sceneRepo := repository.NewEvolversSceneRepository()
	showcaseRepo := repository.NewShowcaseProductRepository()
	studioRepo := repository.NewStudioProjectRepository()
	deityRepo := repository.NewMythologyDeityRepository()
	codexRepo := repository.NewCodexLayerRepository()
	cityRepo := repository.NewEnvironmentalCityRepository()
	auditRepo := repository.NewImageAuditRepository()
	schoolRepo := repository.NewMetaSchoolRepository()
	nationRepo := repository.NewMetaNationRepository()
	galaxyRepo := repository.NewMetaGalaxyRepository()
	vaultRepo := repository.NewTreasuryVaultRepository()

	// Initialize services
	userService := service.NewUserService(userRepo)

	seedService := service.NewSeedService(service.SeedServiceConfig{
		DomainRepo:  domainRepo,
		SocietyRepo: societyRepo,
		AssetsDir:   cfg.Assets.Dir,
		DomainsFile: cfg.Assets.DomainsFile,
		SocietyFile: cfg.Assets.SocietyFile,
	})

	ipfsService := service.NewIPFSService(service.IPFSServiceConfig{
		APIKey:   cfg.IPFS.APIKey,
		Endpoint: cfg.IPFS.Endpoint,
		Timeout:  cfg.IPFS.Timeout,
	})
	if !ipfsService.Configured() {
		slog.Warn("NFT_STORAGE_API_KEY not set, ENFT metadata uploads disabled")
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, userRepo)
	domainHandler := handler.NewDomainHandler(domainRepo, seedService)
	societyHandler := handler.NewSocietyHandler(societyRepo, seedService)
	actorHandler := handler.NewActorHandler(actorRepo)
	mallHandler := handler.NewMallHandler(mallRepo)
	productHandler := handler.NewProductHandler(productRepo)
	ritualHandler := handler.NewRitualHandler(ritualRepo)
	storyHandler := handler.NewStoryHandler(chapterRepo, sceneRepo)
	showcaseHandler := handler.NewShowcaseHandler(showcaseRepo)
	studioHandler := handler.NewStudioHandler(studioRepo)
	mythologyHandler := handler.NewMythologyHandler(deityRepo, codexRepo)
	cityHandler := handler.NewCityHandler(cityRepo)
	auditHandler := handler.NewAuditHandler(auditRepo)
	metascaleHandler := handler.NewMetascaleHandler(schoolRepo, nationRepo, galaxyRepo)
	vaultHandler := handler.NewVaultHandler(vaultRepo)
	enftHandler := handler.NewENFTHandler(ipfsService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// User endpoints
	mux.HandleFunc("POST /api/users", userHandler.Create)
	mux.HandleFunc("GET /api/users/{id}", userHandler.Get)

	// Overscale domain endpoints
	mux.HandleFunc("GET /api/overscale-domains", domainHandler.List)
	mux.HandleFunc("GET /api/overscale-domains/{id}", domainHandler.Get)
	mux.HandleFunc("POST /api/overscale-domains", domainHandler.Create)
	mux.HandleFunc("POST /api/overscale-domains/seed", domainHandler.Seed)

	// Hidden society endpoints
	mux.HandleFunc("GET /api/hidden-societies", societyHandler.List)
	mux.HandleFunc("GET /api/hidden-societies/{id}", societyHandler.Get)
	mux.HandleFunc("POST /api/hidden-societies", societyHandler.Create)
	mux.HandleFunc("PATCH /api/hidden-societies/{id}/status", societyHandler.UpdateStatus)
	mux.HandleFunc("POST /api/hidden-societies/seed", societyHandler.Seed)

	// War actor endpoints
	mux.HandleFunc("GET /api/war-actors", actorHandler.List)
	mux.HandleFunc("GET /api/war-actors/{codename}", actorHandler.GetByCodename)
	mux.HandleFunc("GET /api/war-actors/id/{id}", actorHandler.GetByID)

	// Mall node endpoints
	mux.HandleFunc("GET /api/mall-nodes", mallHandler.List)
	mux.HandleFunc("GET /api/mall-nodes/{id}", mallHandler.Get)
	mux.HandleFunc("POST /api/mall-nodes", mallHandler.Create)

	// Market product endpoints
	mux.HandleFunc("GET /api/market-products", productHandler.List)
	mux.HandleFunc("GET /api/market-products/{id}", productHandler.Get)
	mux.HandleFunc("GET /api/market-products/sector/{sector}", productHandler.GetBySector)

	// Ceremonial ritual endpoints
	mux.HandleFunc("GET /api/ceremonial-rituals", ritualHandler.List)
	mux.HandleFunc("GET /api/ceremonial-rituals/{id}", ritualHandler.Get)
	mux.HandleFunc("PATCH /api/ceremonial-rituals/{id}/status", ritualHandler.UpdateStatus)

	// Story chapter and scene endpoints
	mux.HandleFunc("GET /api/story-chapters", storyHandler.ListChapters)
	mux.HandleFunc("GET /api/story-chapters/{id}", storyHandler.GetChapter)
	mux.HandleFunc("GET /api/evolvers-scenes", storyHandler.ListScenes)
	mux.HandleFunc("GET /api/evolvers-scenes/act/{act}", storyHandler.GetScenesByAct)

	// Showcase product endpoints
	mux.HandleFunc("GET /api/showcase-products", showcaseHandler.List)
	mux.HandleFunc("GET /api/showcase-products/{id}", showcaseHandler.Get)
	mux.HandleFunc("GET /api/showcase-products/category/{category}", showcaseHandler.GetByCategory)

	// Studio project endpoints
	mux.HandleFunc("GET /api/studio-projects", studioHandler.List)
	mux.HandleFunc("GET /api/studio-projects/{id}", studioHandler.Get)
	mux.HandleFunc("GET /api/studio-projects/type/{projectType}", studioHandler.GetByType)
	mux.HandleFunc("GET /api/studio-projects/status/{status}", studioHandler.GetByStatus)

	// Mythology deity and codex layer endpoints
	mux.HandleFunc("GET /api/mythology-deities", mythologyHandler.ListDeities)
	mux.HandleFunc("GET /api/mythology-deities/{id}", mythologyHandler.GetDeity)
	mux.HandleFunc("GET /api/mythology-deities/name/{name}", mythologyHandler.GetDeityByName)
	mux.HandleFunc("GET /api/codex-layers", mythologyHandler.ListCodexLayers)
	mux.HandleFunc("GET /api/codex-layers/{id}", mythologyHandler.GetCodexLayer)
	mux.HandleFunc("GET /api/codex-layers/number/{layerNumber}", mythologyHandler.GetCodexLayerByNumber)

	// Environmental city endpoints
	mux.HandleFunc("GET /api/environmental-cities", cityHandler.List)
	mux.HandleFunc("GET /api/environmental-cities/{id}", cityHandler.Get)
	mux.HandleFunc("GET /api/environmental-cities/region/{region}", cityHandler.GetByRegion)
	mux.HandleFunc("GET /api/environmental-cities/biome/{biome}", cityHandler.GetByBiome)

	// Image audit endpoints
	mux.HandleFunc("GET /api/image-audits", auditHandler.List)
	mux.HandleFunc("GET /api/image-audits/{id}", auditHandler.Get)
	mux.HandleFunc("GET /api/image-audits/file/{fileName}", auditHandler.GetByFileName)
	mux.HandleFunc("GET /api/image-audits/density/{minScore}", auditHandler.GetByMinDensity)

	// Meta school, nation, and galaxy endpoints
	mux.HandleFunc("GET /api/meta-schools", metascaleHandler.ListSchools)
	mux.HandleFunc("GET /api/meta-schools/{id}", metascaleHandler.GetSchool)
	mux.HandleFunc("GET /api/meta-schools/status/{status}", metascaleHandler.GetSchoolsByStatus)
	mux.HandleFunc("GET /api/meta-nations", metascaleHandler.ListNations)
	mux.HandleFunc("GET /api/meta-nations/{id}", metascaleHandler.GetNation)
	mux.HandleFunc("GET /api/meta-nations/status/{status}", metascaleHandler.GetNationsByDiplomaticStatus)
	mux.HandleFunc("GET /api/meta-galaxies", metascaleHandler.ListGalaxies)
	mux.HandleFunc("GET /api/meta-galaxies/{id}", metascaleHandler.GetGalaxy)
	mux.HandleFunc("GET /api/meta-galaxies/consciousness/{level}", metascaleHandler.GetGalaxiesByConsciousnessLevel)

	// Treasury vault and ENFT registry endpoints
	mux.HandleFunc("GET /api/treasury-vaults", vaultHandler.ListVaults)
	mux.HandleFunc("GET /api/treasury-vaults/{id}", vaultHandler.GetVault)
	mux.HandleFunc("GET /api/enft-registry", vaultHandler.ListRegistry)
	mux.HandleFunc("GET /api/enft-registry/{id}", vaultHandler.GetRegistryEntry)
	mux.HandleFunc("GET /api/enft-registry/vault/{vaultId}", vaultHandler.GetRegistryByVault)
	mux.HandleFunc("GET /api/metavault-summary", vaultHandler.GetSummary)

	// ENFT metadata upload endpoint
	mux.HandleFunc("POST /api/enft-metadata", enftHandler.Upload)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
