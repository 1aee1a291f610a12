package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studyloop/studyloop/internal/core"
)

const userKey = "userID"

// TaskService is the subset of core.TaskService the handlers use
type TaskService interface {
	Generate(ctx context.Context, userID, topic string) ([]core.Task, error)
	List(ctx context.Context, userID string) ([]core.Task, error)
	Create(ctx context.Context, userID, title, topic string, completed bool) (*core.Task, error)
	EditTitle(ctx context.Context, userID, id, title string) (*core.Task, error)
	ToggleCompleted(ctx context.Context, userID, id string, completed bool) (*core.Task, error)
	Delete(ctx context.Context, userID, id string) (*core.Task, error)
}

// UserResolver maps an incoming request to an authenticated user identifier.
// Implementations: TokenResolver (static bearer tokens from config). In a real
// deployment this seam is where the external identity provider plugs in.
type UserResolver interface {
	Resolve(r *http.Request) (string, bool)
}

// TokenResolver resolves bearer tokens against a fixed token -> user map
type TokenResolver struct {
	tokens map[string]string
}

// NewTokenResolver creates a resolver over the given token -> user map
func NewTokenResolver(tokens map[string]string) *TokenResolver {
	return &TokenResolver{tokens: tokens}
}

func (tr *TokenResolver) Resolve(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	userID, ok := tr.tokens[token]
	return userID, ok
}

// Server is the studyloop web server
type Server struct {
	service  TaskService
	resolver UserResolver
	router   *gin.Engine
}

// NewServer creates a new web server
func NewServer(service TaskService, resolver UserResolver) *Server {
	router := gin.Default()

	s := &Server{
		service:  service,
		resolver: resolver,
		router:   router,
	}

	// API routes, all behind identity resolution
	api := router.Group("/api", s.requireUser)
	{
		api.POST("/generate-tasks", s.handleGenerate)
		api.GET("/tasks", s.handleList)
		api.POST("/tasks", s.handleCreate)
		api.PUT("/tasks/:id", s.handleEdit)
		api.PATCH("/tasks/:id", s.handleToggle)
		api.DELETE("/tasks/:id", s.handleDelete)
	}

	return s
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// RunContext starts the web server and shuts it down gracefully when ctx is
// cancelled, draining in-flight requests before returning.
func (s *Server) RunContext(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Handler exposes the router (used by tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// requireUser rejects any request with no resolvable user identity before the
// handler runs
func (s *Server) requireUser(c *gin.Context) {
	userID, ok := s.resolver.Resolve(c.Request)
	if !ok || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Set(userKey, userID)
	c.Next()
}
