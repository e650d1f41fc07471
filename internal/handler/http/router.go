package http

import (
	"log/slog"
	"os"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http/middleware"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	announcementHandler AnnouncementHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pkl-eabsensi"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
				})

				r.Route("/{userId}", func(r chi.Router) {

					// Account owner or admin
					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOrAdmin)
						r.Get("/", userHandler.Get)
						r.Get("/attendance", attendanceHandler.List)
						r.Get("/attendance/history", attendanceHandler.History)
					})

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", userHandler.Update)
						r.Delete("/", userHandler.Delete)
						r.Post("/attendance/generate", attendanceHandler.Generate)
						r.Get("/attendance/export", reportHandler.Export)
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/leave-requests", attendanceHandler.ListLeaveRequests)
				})

				r.Route("/{attendanceId}", func(r chi.Router) {
					r.Get("/", attendanceHandler.Get)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/leave", attendanceHandler.RequestLeave)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Patch("/leave/approve", attendanceHandler.ApproveLeave)
						r.Patch("/leave/reject", attendanceHandler.RejectLeave)
						r.Put("/", attendanceHandler.Update)
						r.Delete("/", attendanceHandler.Delete)
					})
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.ListActive)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", announcementHandler.Create)
					r.Put("/{announcementId}", announcementHandler.Update)
					r.Delete("/{announcementId}", announcementHandler.Delete)
				})
			})
		})
	})
	return r
}
