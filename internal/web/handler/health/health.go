// Package health provides the liveness check handler.
package health

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cms-api/cms-api/internal/config"
	"github.com/cms-api/cms-api/internal/web/handler"
)

const (
	// Path is the path to the health check.
	Path = handler.RootPath + "health"

	// Status is the status reported while the service is up.
	Status = "healthy"
)

// Service is the health handler service.
type Service struct {
	handler.Service
	cfg *config.Settings
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, cfg *config.Settings) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get reports the service as healthy. It ignores any request input.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": Status})
}
