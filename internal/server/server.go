// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the wiring layer. It decides:
//   - which storage backend the repositories run on
//   - which URL patterns map to which handler functions
//   - which middleware runs on which routes
//   - how the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
//
//	config.Config → store (sqlite.DB or postgres.DB)
//	              → auth.TokenManager, auth.PasswordService
//	              → service.*Service (repositories + auth helpers)
//	              → handler.*Handler (services)
//	              → chi routes
//
// This is the "composition root" pattern: all dependencies are wired in one
// place (New/setupRoutes), rather than scattered across the codebase.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/forum-api/internal/auth"
	"github.com/sakif/forum-api/internal/config"
	"github.com/sakif/forum-api/internal/handler"
	"github.com/sakif/forum-api/internal/middleware"
	"github.com/sakif/forum-api/internal/repository"
	"github.com/sakif/forum-api/internal/repository/postgres"
	sqliteRepo "github.com/sakif/forum-api/internal/repository/sqlite"
	"github.com/sakif/forum-api/internal/service"
)

// requestTimeout bounds a single request, including its database work.
const requestTimeout = 30 * time.Second

// store is what both storage backends provide: every repository plus the
// lifecycle methods the server needs.
type store interface {
	repository.UserRepository
	repository.AuthenticationRepository
	repository.ThreadRepository
	repository.CommentRepository
	repository.ReplyRepository
	repository.LikeRepository
	Ping(ctx context.Context) error
	Close() error
}

// Server represents the HTTP server and all its dependencies.
//
// RESOURCE MANAGEMENT:
// The Server owns the database connection. Start closes it after the HTTP
// server has drained; callers that never call Start must call Close.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     store
}

// New opens the configured store and wires every layer on top of it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	tokens, err := auth.NewTokenManager(cfg.Token.AccessKey, cfg.Token.RefreshKey, cfg.Token.AccessAge)
	if err != nil {
		return nil, fmt.Errorf("creating token manager: %w", err)
	}

	db, err := openStore(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes(tokens, auth.NewPasswordService())
	return s, nil
}

// openStore picks the backend. Both implement the same repository contracts,
// so nothing above this line knows which one is in use.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg.URL)
	case config.DriverSQLite:
		return sqliteRepo.New(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	POST   /users                                                   register
//	POST   /authentications                                         login
//	PUT    /authentications                                         refresh access token
//	DELETE /authentications                                         logout
//	GET    /threads/{threadId}                                      thread detail
//	POST   /threads                                                 [auth] new thread
//	POST   /threads/{threadId}/comments                             [auth] new comment
//	DELETE /threads/{threadId}/comments/{commentId}                 [auth] soft-delete comment
//	POST   /threads/{threadId}/comments/{commentId}/replies         [auth] new reply
//	DELETE /threads/{threadId}/comments/{commentId}/replies/{id}    [auth] soft-delete reply
//	PUT    /threads/{threadId}/comments/{commentId}/likes           [auth] like / unlike
//	GET    /users/me/likes                                          [auth] like history
//	GET    /health                                                  storage ping
//
// MIDDLEWARE ORDER MATTERS:
// RequestID runs first so the logger and the 500 handler can both print it.
// Recoverer sits inside Logger, so a panic is logged as the 500 it becomes.
func (s *Server) setupRoutes(tokens *auth.TokenManager, passwords *auth.PasswordService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(requestTimeout))

	s.router.NotFound(handler.NotFound)
	s.router.MethodNotAllowed(handler.MethodNotAllowed)

	// === SERVICES ===
	// One store value satisfies every repository interface.
	userService := service.NewUserService(s.db, passwords, s.logger)
	authService := service.NewAuthService(s.db, s.db, tokens, passwords, s.logger)
	threadService := service.NewThreadService(s.db, s.db, s.db, s.db, s.logger)
	commentService := service.NewCommentService(s.db, s.db, s.logger)
	replyService := service.NewReplyService(s.db, s.db, s.db, s.logger)
	likeService := service.NewLikeService(s.db, s.db, s.db, s.logger)

	// === HANDLERS ===
	users := handler.NewUserHandler(userService, s.logger)
	authentications := handler.NewAuthHandler(authService, s.logger)
	threads := handler.NewThreadHandler(threadService, s.logger)
	comments := handler.NewCommentHandler(commentService, s.logger)
	replies := handler.NewReplyHandler(replyService, s.logger)
	likes := handler.NewLikeHandler(likeService, s.logger)
	health := handler.NewHealthHandler(s.db, s.logger)

	// === PUBLIC ROUTES ===
	s.router.Get("/health", health.HandleHealth)
	s.router.Post("/users", users.HandleAddUser)
	s.router.Route("/authentications", func(r chi.Router) {
		r.Post("/", authentications.HandleLogin)
		r.Put("/", authentications.HandleRefresh)
		r.Delete("/", authentications.HandleLogout)
	})
	s.router.Get("/threads/{threadId}", threads.HandleGetThread)

	// === PROTECTED ROUTES ===
	// RequireAuth puts the token's {id, username} on the context; handlers
	// read it with auth.UserFromContext.
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))

		r.Post("/threads", threads.HandleAddThread)
		r.Route("/threads/{threadId}/comments", func(r chi.Router) {
			r.Post("/", comments.HandleAddComment)
			r.Route("/{commentId}", func(r chi.Router) {
				r.Delete("/", comments.HandleDeleteComment)
				r.Put("/likes", likes.HandleLikeUnlike)
				r.Post("/replies", replies.HandleAddReply)
				r.Delete("/replies/{replyId}", replies.HandleDeleteReply)
			})
		})
		r.Get("/users/me/likes", likes.HandleLikeHistory)
	})
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database connection.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
//  1. Stop accepting new HTTP connections
//  2. Wait for in-flight requests to finish (SHUTDOWN_TIMEOUT)
//  3. Close the database connection
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         s.config.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("database", s.config.Database.Driver),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
