// Command colonysim runs the persistent colony-world simulation: procedural
// planet, building economy, tech research, and the periodic threat cycle,
// with a read-only observation API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/talgya/colony-world/internal/api"
	"github.com/talgya/colony-world/internal/catalog"
	"github.com/talgya/colony-world/internal/config"
	"github.com/talgya/colony-world/internal/engine"
	"github.com/talgya/colony-world/internal/persistence"
	"github.com/talgya/colony-world/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// ── Catalogs ──────────────────────────────────────────────────────
	cats, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		slog.Error("failed to load catalogs", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── World seed: reuse the saved one so inner maps stay stable ─────
	seed := cfg.Seed
	if v, ok, err := db.GetMeta("seed"); err == nil && ok {
		if saved, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = saved
		}
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	if err := db.SaveMeta("seed", strconv.FormatInt(seed, 10)); err != nil {
		slog.Error("failed to persist seed", "error", err)
		os.Exit(1)
	}

	// ── World map (regenerated every start — deterministic per size) ──
	worldMap := world.Generate(world.DefaultGenConfig(cfg.WorldSize, seed), cats.Cities)
	for t, c := range world.TerrainCounts(worldMap) {
		slog.Info("terrain", "type", world.TerrainName(t), "count", c)
	}

	// ── Player state: restore or start fresh ──────────────────────────
	state, found, err := db.LoadPlayer()
	if err != nil {
		slog.Error("failed to load player state", "error", err)
		os.Exit(1)
	}
	if !found {
		slog.Info("no saved colony found, starting fresh")
		state = engine.NewPlayerState()
		if err := db.SavePlayer(state); err != nil {
			slog.Error("initial save failed", "error", err)
		}
	}

	// ── Scheduler ─────────────────────────────────────────────────────
	sched := engine.NewScheduler(state, cats, cfg.TickInterval())

	hub := api.NewHub()
	go hub.Run()

	sched.OnTick = func(s *engine.PlayerState) {
		hub.Broadcast("tick", s)
		if cfg.SaveEveryTicks > 0 && s.Tick%uint64(cfg.SaveEveryTicks) == 0 {
			if err := db.SavePlayer(s); err != nil {
				slog.Error("periodic save failed", "tick", s.Tick, "error", err)
			}
		}
	}

	// ── Observation API ───────────────────────────────────────────────
	adminKey := os.Getenv("COLONYSIM_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("COLONYSIM_ADMIN_KEY not set — build/research endpoints disabled")
	}

	apiServer := &api.Server{
		Sched:        sched,
		World:        worldMap,
		Catalogs:     cats,
		DB:           db,
		Hub:          hub,
		Port:         cfg.APIPort,
		InnerMapSize: cfg.InnerMapSize,
		AdminKey:     adminKey,
	}
	apiServer.Start()

	// ── Run until interrupted ─────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		sched.Stop()
	}()

	fmt.Printf("Colony online: tick %d, %d buildings, world %d×%d.\n",
		state.Tick, len(state.Buildings), cfg.WorldSize, cfg.WorldSize)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	sched.Run()

	slog.Info("final save...")
	if err := db.SavePlayer(sched.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. Colony state saved.")
}
