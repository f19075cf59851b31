package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/config"
	"github.com/synergysphere/synergy/internal/database"
	"github.com/synergysphere/synergy/internal/insights"
	"github.com/synergysphere/synergy/internal/logger"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/repository/demo"
	postgresrepo "github.com/synergysphere/synergy/internal/repository/postgres"
	"github.com/synergysphere/synergy/internal/team"
	"github.com/synergysphere/synergy/internal/transport/http/handlers"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
	"github.com/synergysphere/synergy/internal/transport/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env, cfg.LogLevel)
	defer log.Sync()

	// Store selection happens once at startup: a configured backend
	// gets postgres, anything else the seeded in-memory demo store.
	var store *repository.Store
	if cfg.Configured() {
		pool, err := database.Connect(context.Background(), cfg)
		if err != nil {
			log.Fatalw("database connect", "error", err)
		}
		defer pool.Close()
		store = postgresrepo.NewStore(pool)
		log.Infow("connected to database")
	} else {
		store = demo.NewStore()
		log.Warnw("backend not configured, running in demo mode")
	}

	// Services
	apiService := api.NewService(store, log)
	authService := auth.NewService(store.Profiles, cfg.JWTSecret(), !cfg.Configured())
	teamService := team.NewService(apiService, store.Invites, log)
	insightsService := insights.NewService(apiService, log)

	// WebSocket hub
	hub := ws.NewHub()
	apiService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(apiService)
	projectHandler := handlers.NewProjectHandler(apiService)
	taskHandler := handlers.NewTaskHandler(apiService)
	messageHandler := handlers.NewMessageHandler(apiService)
	teamHandler := handlers.NewTeamHandler(teamService)
	activityHandler := handlers.NewActivityHandler(apiService)
	insightsHandler := handlers.NewInsightsHandler(insightsService, authService)

	// Auth middleware
	authMW := middleware.Auth(cfg.JWTSecret())

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret()))

	// Protected - Auth / Profiles
	mux.Handle("GET /api/v1/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/v1/profiles", authMW(http.HandlerFunc(profileHandler.List)))
	mux.Handle("GET /api/v1/profiles/{id}", authMW(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PATCH /api/v1/profiles/me", authMW(http.HandlerFunc(profileHandler.UpdateMe)))

	// Protected - Projects
	mux.Handle("GET /api/v1/projects", authMW(http.HandlerFunc(projectHandler.List)))
	mux.Handle("POST /api/v1/projects", authMW(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("GET /api/v1/projects/{id}", authMW(http.HandlerFunc(projectHandler.Get)))
	mux.Handle("PATCH /api/v1/projects/{id}", authMW(http.HandlerFunc(projectHandler.Update)))
	mux.Handle("DELETE /api/v1/projects/{id}", authMW(http.HandlerFunc(projectHandler.Delete)))

	// Protected - Tasks
	mux.Handle("GET /api/v1/tasks", authMW(http.HandlerFunc(taskHandler.List)))
	mux.Handle("POST /api/v1/tasks", authMW(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /api/v1/tasks/{id}", authMW(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("PATCH /api/v1/tasks/{id}", authMW(http.HandlerFunc(taskHandler.Update)))
	mux.Handle("DELETE /api/v1/tasks/{id}", authMW(http.HandlerFunc(taskHandler.Delete)))

	// Protected - Messages
	mux.Handle("GET /api/v1/messages", authMW(http.HandlerFunc(messageHandler.List)))
	mux.Handle("POST /api/v1/messages", authMW(http.HandlerFunc(messageHandler.Create)))

	// Protected - Team
	mux.Handle("GET /api/v1/team/members", authMW(http.HandlerFunc(teamHandler.Members)))
	mux.Handle("GET /api/v1/team/members/search", authMW(http.HandlerFunc(teamHandler.Search)))
	mux.Handle("GET /api/v1/team/stats", authMW(http.HandlerFunc(teamHandler.Stats)))
	mux.Handle("PATCH /api/v1/team/members/{id}/role", authMW(http.HandlerFunc(teamHandler.UpdateMemberRole)))
	mux.Handle("DELETE /api/v1/team/members/{id}", authMW(http.HandlerFunc(teamHandler.RemoveMember)))
	mux.Handle("GET /api/v1/team/invitations", authMW(http.HandlerFunc(teamHandler.Invitations)))
	mux.Handle("POST /api/v1/team/invitations", authMW(http.HandlerFunc(teamHandler.CreateInvitation)))
	mux.Handle("DELETE /api/v1/team/invitations/{id}", authMW(http.HandlerFunc(teamHandler.CancelInvitation)))

	// Protected - Activity & Insights
	mux.Handle("GET /api/v1/activity", authMW(http.HandlerFunc(activityHandler.List)))
	mux.Handle("GET /api/v1/insights", authMW(http.HandlerFunc(insightsHandler.Recommendations)))
	mux.Handle("GET /api/v1/dashboard/summary", authMW(http.HandlerFunc(insightsHandler.Summary)))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(mux),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go hub.Run()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server exited", "error", err)
	}
	log.Infow("server stopped")
}
