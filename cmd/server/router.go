package main

import (
	"net/http"

	"github.com/ehatamm/project/internal/api"
	apiMiddleware "github.com/ehatamm/project/internal/api/middleware"
	"github.com/ehatamm/project/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// serviceInfo is served by GET /api/info.
var serviceInfo = api.InfoResponse{
	Name:    "Project Management API",
	Version: "1.0.0",
	Description: "A comprehensive REST API for managing projects with full CRUD operations. " +
		"All error responses follow RFC7807 Problem+JSON format.",
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", shared.TraceIDHeader},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverer(api.HandleAPIError))

	projectHandler := api.NewProjectHandler(app.projectService, app.validator, app.logger)
	systemHandler := api.NewSystemHandler(app.projectStore, serviceInfo, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", projectHandler.Routes)
		r.Get("/info", systemHandler.Info)
	})

	r.Get("/health", systemHandler.Health)

	return r
}
