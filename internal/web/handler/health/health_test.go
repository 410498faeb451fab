package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cms-api/cms-api/internal/config"
)

func newTestConfig() *config.Settings {
	return &config.Settings{
		CORSOrigins: []string{"http://localhost:3000"},
		SecretKey:   "test-secret-key",
	}
}

func TestGet(t *testing.T) {
	app := fiber.New()

	if err := Handler.Init(app, newTestConfig()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}

	if len(body) != 1 || body["status"] != Status {
		t.Errorf("body = %v, want {\"status\": %q}", body, Status)
	}
}

func TestInitNilArgs(t *testing.T) {
	if err := Handler.Init(nil, newTestConfig()); err == nil {
		t.Error("Init() expected an error for a nil app")
	}

	if err := Handler.Init(fiber.New(), nil); err == nil {
		t.Error("Init() expected an error for a nil config")
	}
}
