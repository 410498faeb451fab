// Package web implements the HTTP service of the CMS API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/cms-api/cms-api/internal/config"
	accesslog "github.com/cms-api/cms-api/internal/logger/adapter/fiber"
	"github.com/cms-api/cms-api/internal/web/handler/health"
	"github.com/cms-api/cms-api/internal/web/handler/root"
)

// Service represents the web service.
type Service struct {
	App *fiber.App
	cfg *config.Settings
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	log.Info().
		Str("addr", addr).
		Strs("cors_origins", s.cfg.CORSOrigins).
		Msg("web service accepting requests")

	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given settings.
func New(cfg *config.Settings) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "cms-api",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:    cfg.LoggerConfig(),
		HealthURI: health.Path,
	}))

	// cross-origin policy driven by the settings: configured origins,
	// credentials allowed, all methods, requested headers mirrored back.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
	}

	// init handlers (they register their own routes)
	root.Handler.Init(app, cfg)
	health.Handler.Init(app, cfg)

	return service
}
