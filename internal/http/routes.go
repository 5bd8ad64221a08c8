package http

import (
	"todolist_api/internal/http/handlers"
	"todolist_api/internal/http/middleware"
	"todolist_api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires all routes onto the engine.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, sessions session.Store, cookie handlers.CookieConfig, version string) {
	h := handlers.NewHandler(db, sessions, cookie)
	healthHandler := handlers.NewHealthHandler(db, version)

	r.GET("/health", healthHandler.Readiness)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	RegisterAPIRoutes(r, h, sessions)
}

// RegisterAPIRoutes wires the user and task routes for a pre-built
// handler. Split out so tests can mount the API on a bare engine.
func RegisterAPIRoutes(r *gin.Engine, h *handlers.Handler, sessions session.Store) {
	users := r.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/logout", h.Logout)
	}

	// Every task route sits behind the session gate.
	tasks := r.Group("/tasks")
	tasks.Use(middleware.Session(sessions, h.Cookie.Name))
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
