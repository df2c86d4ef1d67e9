package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "moviestream/docs" // swagger docs

	"moviestream/internal/cache"
	"moviestream/internal/config"
	"moviestream/internal/db"
	"moviestream/internal/handler"
	"moviestream/internal/repository"
	"moviestream/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title MovieStream API
// @version 1.0
// @description Streaming-catalog REST backend (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo and Redis are process-scoped: acquired once here, released
	// after the HTTP server drains.
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("[mongo] index bootstrap failed: %v", err)
	}
	cancel()

	// repos
	movieRepo := repository.NewMovieRepository()
	genreRepo := repository.NewGenreRepository()

	// services
	catalogSvc := service.NewCatalogService(movieRepo, genreRepo)
	adminSvc := service.NewAdminService(movieRepo, genreRepo)

	// handlers
	movieH := handler.NewMovieHandler(catalogSvc)
	genreH := handler.NewGenreHandler(catalogSvc)
	adminH := handler.NewAdminHandler(adminSvc, cfg.AdminToken)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		// =============
		// Public routes
		// =============
		r.Get("/movies", movieH.ListMovies)
		r.Get("/movies/search/query", movieH.Search)
		r.Get("/movies/{id}", movieH.GetMovie)
		r.Post("/movies/{id}/increment-view", movieH.IncrementView)
		r.Get("/genres", genreH.ListGenres)

		// validate-token reports instead of failing, so it sits
		// outside the gate.
		r.Post("/admin/validate-token", adminH.ValidateToken)

		// ===========================
		// Admin routes (access gate)
		// ===========================
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminAuth(cfg.AdminToken))

			r.Post("/admin/movies", adminH.CreateMovie)
			r.Put("/admin/movies/{id}", adminH.UpdateMovie)
			r.Delete("/admin/movies/{id}", adminH.DeleteMovie)
			r.Post("/admin/movies/bulk-import", adminH.BulkImport)

			r.Post("/admin/genres", adminH.CreateGenre)
			r.Delete("/admin/genres/{id}", adminH.DeleteGenre)

			r.Get("/admin/stats", adminH.Stats)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("HTTP listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] server failed: %v", err)
		}
	}()

	<-rootCtx.Done()
	log.Println("[http] shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown failed: %v", err)
	}
	cache.Close()
	db.Close(shutdownCtx)
}
