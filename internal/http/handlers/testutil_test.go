package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todolist_api/internal/domain"
	httpServer "todolist_api/internal/http"
	"todolist_api/internal/http/handlers"
	"todolist_api/internal/repository"
	"todolist_api/internal/service"
	"todolist_api/internal/session"

	"github.com/gin-gonic/gin"
)

const testCookie = "todo_sid"

type memUserStore struct {
	users  []*domain.User
	nextID int64
}

func (s *memUserStore) Create(_ context.Context, u *domain.User) error {
	for _, e := range s.users {
		if e.Username == u.Username || e.Email == u.Email {
			return repository.ErrDuplicateUser
		}
	}
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, e := range s.users {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, e := range s.users {
		if e.Username == username || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memTaskStore struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[int64]*domain.Task)}
}

func (s *memTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Task, error) {
	var res []*domain.Task
	for _, t := range s.tasks {
		if t.UserID == ownerID {
			cp := *t
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (s *memTaskStore) Create(_ context.Context, t *domain.Task) error {
	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Now()
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *memTaskStore) GetByID(_ context.Context, id, ownerID int64) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *memTaskStore) Update(_ context.Context, t *domain.Task) error {
	old, ok := s.tasks[t.ID]
	if !ok || old.UserID != t.UserID {
		return repository.ErrNotFound
	}
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *memTaskStore) Delete(_ context.Context, id, ownerID int64) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// newTestRouter builds a gin engine backed by in-memory stores.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithSessions(t, session.NewMemoryStore())
}

func newTestRouterWithSessions(t *testing.T, sessions session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(&memUserStore{}, sessions)
	tasks := service.NewTaskService(newMemTaskStore())
	h := handlers.NewHandlerWithServices(auth, tasks, handlers.CookieConfig{Name: testCookie})

	r := gin.New()
	httpServer.RegisterAPIRoutes(r, h, sessions)
	return r
}

// failDestroyStore wraps a working store with a Destroy that always
// fails, to exercise the logout error path.
type failDestroyStore struct {
	session.Store
}

func (failDestroyStore) Destroy(context.Context, string) error {
	return errors.New("store unavailable")
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session token from a login response.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == testCookie {
			return c.Value
		}
	}
	t.Fatalf("no %s cookie in response", testCookie)
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerAndLogin creates a user and returns its id and session token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, email, password string) (int64, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/users/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	return resp.User.ID, sessionCookie(t, w)
}
