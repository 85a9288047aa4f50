// Package server implements the reference Vowsync backend: the REST API
// the client core talks to, backed by SQLite. It exists for local
// development and end-to-end testing; production deployments bring their
// own backend.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/vowsync/vowsync/internal/auth"
	"github.com/vowsync/vowsync/internal/storage"
)

// Server wires the HTTP handlers over storage and auth. cache may be nil,
// which disables vendor-search caching.
type Server struct {
	store storage.Store
	authn *auth.PasswordAuthenticator
	jwt   *auth.JWTManager
	cache *redis.Client
}

// New creates a server over the given collaborators.
func New(store storage.Store, jwtManager *auth.JWTManager, cache *redis.Client) *Server {
	return &Server{
		store: store,
		authn: auth.NewPasswordAuthenticator(store),
		jwt:   jwtManager,
		cache: cache,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), metricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	r.GET("/healthz", s.healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	// The vendor proxy takes no bearer token, matching the mobile client.
	r.GET("/search-vendors", s.searchVendors)

	authed := r.Group("/", s.requireAuth())
	{
		authed.GET("/todos/todos", s.listTodos)
		authed.POST("/todos/todos", s.createTodo)
		authed.PATCH("/todos/todos/:id/complete", s.completeTodo)
		authed.PATCH("/todos/todos/:id/due-date", s.setTodoDueDate)
		authed.DELETE("/todos/todos/:id", s.deleteTodo)

		authed.GET("/budgetPlanner/categories", s.listCategories)
		authed.POST("/budgetPlanner/categories", s.createCategory)
		authed.GET("/budgetPlanner/expenses/:categoryId", s.listExpenses)
		authed.POST("/budgetPlanner/expenses", s.createExpense)
		authed.GET("/budgetPlanner/predefined-categories", s.listPredefinedCategories)

		authed.GET("/guests/guests", s.listGuests)
		authed.POST("/guests/add-guest", s.addGuest)

		authed.GET("/weddingDetails/wedding-details", s.getWeddingDetails)
		authed.POST("/weddingDetails/wedding-details", s.submitWeddingDetails)
	}

	return r
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "vowsync"})
}
