// Package api serves colony state over HTTP. GET endpoints are public
// read-only observation; POST endpoints (build, research) require a bearer
// token and mutate state only through the scheduler. Consumers never write
// PlayerState directly.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/colony-world/internal/catalog"
	"github.com/talgya/colony-world/internal/engine"
	"github.com/talgya/colony-world/internal/persistence"
	"github.com/talgya/colony-world/internal/world"
)

// Server exposes the running simulation.
type Server struct {
	Sched    *engine.Scheduler
	World    *world.Map
	Catalogs *catalog.Catalogs
	DB       *persistence.DB
	Hub      *Hub

	Port         int
	InnerMapSize int
	AdminKey     string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	tileLimiter := NewRateLimiter(120, time.Minute)

	mux := http.NewServeMux()

	// Public read-only endpoints.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/player", s.handlePlayer)
	mux.HandleFunc("/api/v1/map", s.handleMap)
	mux.HandleFunc("/api/v1/tile/", RateLimitMiddleware(tileLimiter, s.handleTile))
	mux.HandleFunc("/api/v1/catalog/buildings", s.handleCatalogBuildings)
	mux.HandleFunc("/api/v1/catalog/techs", s.handleCatalogTechs)
	mux.HandleFunc("/api/v1/catalog/units", s.handleCatalogUnits)

	// Admin control plane.
	mux.HandleFunc("/api/v1/build", s.requireAdmin(s.handleBuild))
	mux.HandleFunc("/api/v1/research", s.requireAdmin(s.handleResearch))

	// Observer stream.
	if s.Hub != nil {
		mux.HandleFunc("/ws", s.Hub.ServeWS)
	}

	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("api listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("api server failed", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requireAdmin guards POST endpoints with the bearer token.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		if s.AdminKey == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled")
			return
		}
		auth := r.Header.Get("Authorization")
		if auth != "Bearer "+s.AdminKey {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Sched.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"tick":          snap.Tick,
		"threat_level":  snap.ThreatLevel,
		"defense_level": snap.DefenseLevel,
		"buildings":     len(snap.Buildings),
		"researching":   snap.Research.Current,
		"world_size":    s.World.Size,
	})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Sched.Snapshot())
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	counts := world.TerrainCounts(s.World)
	named := make(map[string]int, len(counts))
	for t, c := range counts {
		named[world.TerrainName(t)] = c
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"size":    s.World.Size,
		"terrain": named,
		"cities":  s.Catalogs.Cities,
	})
}

// handleTile serves one tile with its inner map. The inner map comes from
// the persistence cache when present; otherwise it is generated and cached,
// making this the explicit cache boundary for inner-map stability.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/tile/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		writeError(w, http.StatusBadRequest, "expected /api/v1/tile/{x}/{y}")
		return
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "coordinates must be integers")
		return
	}

	tile, err := s.World.TileAt(x, y)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	inner, err := s.innerMapFor(x, y)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tile":          tile,
		"movement_cost": world.MovementCost(tile.Terrain),
		"inner_map":     inner,
	})
}

func (s *Server) innerMapFor(x, y int) (*world.InnerMap, error) {
	if s.DB != nil {
		if im, ok, err := s.DB.LoadInnerMap(x, y); err != nil {
			return nil, err
		} else if ok {
			return im, nil
		}
	}

	im, err := world.GenerateInner(s.World, x, y, s.InnerMapSize)
	if err != nil {
		return nil, err
	}

	if s.DB != nil {
		if err := s.DB.SaveInnerMap(im); err != nil {
			slog.Warn("inner map cache write failed", "x", x, "y", y, "error", err)
		}
	}
	return im, nil
}

func (s *Server) handleCatalogBuildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalogs.Buildings)
}

func (s *Server) handleCatalogTechs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalogs.Techs)
}

func (s *Server) handleCatalogUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalogs.Units)
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DefID string `json:"def_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := s.Sched.Mutate(func(p *engine.PlayerState) error {
		return p.Buy(req.DefID, s.Catalogs)
	})
	if err != nil {
		writeError(w, opStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Sched.Snapshot())
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TechID string `json:"tech_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := s.Sched.Mutate(func(p *engine.PlayerState) error {
		return p.BeginResearch(req.TechID, s.Catalogs)
	})
	if err != nil {
		writeError(w, opStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Sched.Snapshot())
}

// opStatus maps engine operation errors to HTTP statuses.
func opStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrUnknownID):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnaffordable), errors.Is(err, engine.ErrLocked),
		errors.Is(err, engine.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
