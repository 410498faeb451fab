// Package daemon wires the settings and the web service together.
package daemon

import (
	"net"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/cms-api/cms-api/internal/config"
	"github.com/cms-api/cms-api/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Settings
	webService web.Service
}

// Start starts the Daemon's web service on the configured host and port.
func (d *Daemon) Start() error {
	addr := net.JoinHostPort(d.cfg.APIHost, strconv.Itoa(d.cfg.APIPort))

	log.Info().Str("addr", addr).Msg("starting cms-api web service")

	// stop the fiber app on SIGINT/SIGTERM so Start can return
	go d.webService.WaitShutdown()

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided settings.
func New(cfg *config.Settings) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg),
	}
}
