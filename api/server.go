package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"storybook/core"
	"storybook/lib/sl"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	conf    *core.Config
	log     *slog.Logger
	service core.StoryService
	http    *http.Server
}

func NewServer(conf *core.Config, log *slog.Logger) *Server {
	if conf.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		conf: conf,
		log:  log.With(sl.Module("api")),
		http: &http.Server{
			Addr:              net.JoinHostPort(conf.Listen.Bind, conf.Listen.Port),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// SetService set story service
func (s *Server) SetService(service core.StoryService) {
	s.service = service
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(
		RequestID(),
		Recovery(s.log),
		Logger(s.log),
		Metrics(),
		CORS(s.conf.Cors.Origins, s.log),
	)

	r.GET("/", s.root)
	r.GET("/test", s.diagnostics)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.GET("/prompt/system", s.systemPrompt)
	apiGroup.POST("/stories/generate", s.generate)
	apiGroup.GET("/stories", s.listStories)

	return r
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	s.http.Handler = s.Handler()
	s.log.With(slog.String("addr", s.http.Addr)).Info("listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Error("graceful shutdown failed", sl.Err(err))
		_ = s.http.Close()
	}
}
