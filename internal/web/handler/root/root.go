// Package root provides the handler for the API root.
package root

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cms-api/cms-api/internal/config"
	"github.com/cms-api/cms-api/internal/web/handler"
)

const (
	// Path is the path to the API root.
	Path = handler.RootPath

	// Message is the greeting returned by the API root.
	Message = "Hello World!"
)

// Service is the root handler service.
type Service struct {
	handler.Service
	cfg *config.Settings
}

// Handler is the root handler.
var Handler = Service{}

// Init initializes the root handler.
func (s *Service) Init(app *fiber.App, cfg *config.Settings) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get returns the static greeting. It ignores any request input.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": Message})
}
