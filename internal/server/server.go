package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/database"
	"github.com/recipeai/backend/internal/realtime"
	"github.com/recipeai/backend/internal/router"
)

// Server ties together the database, the realtime hub and the HTTP
// listener.
type Server struct {
	cfg          *config.Config
	engine       *gin.Engine
	http         *http.Server
	db           *gorm.DB
	hub          *realtime.Hub
	cancelBridge context.CancelFunc
}

// New builds a fully wired server from configuration. When Redis is
// unreachable, mutations broadcast to the local hub only; a multi
// instance deployment needs the bridge.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	hub := realtime.NewHub()

	var publisher realtime.Publisher = hub
	var cancelBridge context.CancelFunc
	if rdb, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("[Server] Redis unavailable, change feed is local only: %v", err)
	} else {
		bridge := realtime.NewRedisBridge(rdb, hub)
		publisher = bridge

		ctx, cancel := context.WithCancel(context.Background())
		cancelBridge = cancel
		go bridge.Run(ctx)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	engine := router.SetupRouter(db, cfg, hub, publisher, s3Config)

	return &Server{
		cfg:    cfg,
		engine: engine,
		db:     db,
		hub:    hub,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		cancelBridge: cancelBridge,
	}, nil
}

// Start runs the HTTP listener until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and the Redis bridge.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancelBridge != nil {
		s.cancelBridge()
	}
	return s.http.Shutdown(ctx)
}
