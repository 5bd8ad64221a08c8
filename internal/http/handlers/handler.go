package handlers

import (
	"todolist_api/internal/domain"
	"todolist_api/internal/http/middleware"
	"todolist_api/internal/repository"
	"todolist_api/internal/service"
	"todolist_api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CookieConfig describes how the session cookie is issued.
type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	Auth   *service.AuthService
	Tasks  *service.TaskService
	Cookie CookieConfig
}

func NewHandler(db *pgxpool.Pool, sessions session.Store, cookie CookieConfig) *Handler {
	return &Handler{
		Auth:   service.NewAuthService(repository.NewUserRepository(db), sessions),
		Tasks:  service.NewTaskService(repository.NewTaskRepository(db)),
		Cookie: cookie,
	}
}

// NewHandlerWithServices wires pre-built services; used by tests.
func NewHandlerWithServices(auth *service.AuthService, tasks *service.TaskService, cookie CookieConfig) *Handler {
	return &Handler{Auth: auth, Tasks: tasks, Cookie: cookie}
}

// getSessionUser extracts the session summary stored by the middleware.
func getSessionUser(c *gin.Context) (*domain.SessionUser, bool) {
	v, ok := c.Get(middleware.CtxSessionUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.SessionUser)
	return u, ok
}
