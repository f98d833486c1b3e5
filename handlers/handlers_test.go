package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devotional/database"
	"devotional/middleware"
	"devotional/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-0123456789-0123456789-0123456789"

// newTestApp wires the full route table over an in-memory database, the
// same way main does.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	devotionalHandler := NewDevotionalHandler(store.NewDevotionalStore(db))
	authHandler := NewAuthHandler(store.NewUserStore(db), testJWTSecret)

	app := fiber.New()

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", middleware.Auth(testJWTSecret), authHandler.Me)

	devotionalGroup := api.Group("/devotionals")
	devotionalGroup.Get("/", devotionalHandler.List)
	devotionalGroup.Post("/", devotionalHandler.Create)
	devotionalGroup.Get("/:id", devotionalHandler.Get)
	devotionalGroup.Patch("/:id", devotionalHandler.Update)
	devotionalGroup.Delete("/:id", devotionalHandler.Delete)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
