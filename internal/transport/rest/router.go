package rest

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/attendance"
	"github.com/frahmantamala/attendance-system/internal/department"
	"github.com/frahmantamala/attendance-system/internal/employee"
	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/employeeleave"
	"github.com/frahmantamala/attendance-system/internal/leave"
	"github.com/frahmantamala/attendance-system/internal/office"
	"github.com/frahmantamala/attendance-system/internal/person"
	"github.com/frahmantamala/attendance-system/internal/transport"
	"github.com/frahmantamala/attendance-system/internal/transport/middleware"
	"github.com/frahmantamala/attendance-system/internal/transport/openapi"
	"github.com/frahmantamala/attendance-system/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups one handler per resource.
type Handlers struct {
	Person             *person.Handler
	Office             *office.Handler
	Department         *department.Handler
	Leave              *leave.Handler
	Employee           *employee.Handler
	EmployeeLeave      *employeeleave.Handler
	EmployeeAttendance *employeeattendance.Handler
	Attendance         *attendance.Handler
}

func NewRouter(db Pinger, handlers Handlers, allowedOrigins []string, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	RegisterAllRoutes(router, db, handlers, allowedOrigins, logger)
	return router
}

func RegisterAllRoutes(router *chi.Mux, db Pinger, handlers Handlers, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.TraceHeader},
		ExposedHeaders: []string{middleware.TraceHeader},
		MaxAge:         300,
	}))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recovery)

	router.Get(swagger.DocumentURL, openapi.Handler())
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/ping", healthHandler.Ping)

		transport.MountResource(r, "/people", handlers.Person)
		transport.MountResource(r, "/offices", handlers.Office)
		transport.MountResource(r, "/departments", handlers.Department)
		transport.MountResource(r, "/leaves", handlers.Leave)
		transport.MountResource(r, "/employees", handlers.Employee)
		transport.MountResource(r, "/employeesleave", handlers.EmployeeLeave)
		transport.MountResource(r, "/employeesattendance", handlers.EmployeeAttendance)
		transport.MountResource(r, "/attendances", handlers.Attendance)
	})

	logger.Info("routes registered", "resources", 8)
}
