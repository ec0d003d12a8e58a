package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"plantcare/config"
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router"
	"plantcare/internal/delivery/api/router/handler"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/auth/local"
	"plantcare/internal/infra/media"
	"plantcare/internal/infra/persistence/rtdb"
	"plantcare/internal/infra/pubsub"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/infra/realtime"
	"plantcare/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testApp struct {
	echo *echo.Echo
	lc   *fxtest.Lifecycle
}

// newTestApp wires the API over the memory store, local auth and a fileblob bucket.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Auth:     &config.AuthConfig{SessionSecret: "test-secret", SessionTTL: time.Hour, BcryptCost: 4},
		Media:    &config.MediaConfig{BucketURL: "file://" + filepath.ToSlash(t.TempDir()), PublicBaseURL: "http://media.example.com/plants"},
		Activity: &config.ActivityConfig{Capacity: 20},
		Catalog:  &config.CatalogConfig{Enabled: true, WatchInterval: 20 * time.Millisecond},
	}
	cfg.HTTP.MaxRequestBodySize = "10MB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)
	ctx := context.Background()

	store := realtime.NewMemoryStore()
	productRepo := rtdb.NewProductRepository(store, logger)
	userRepo := rtdb.NewUserRepository(store)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	authProvider := local.NewProvider(auth.NewBcryptHasher(cfg), tokens, logger)

	mediaSvc, err := media.NewMediaService(media.ServiceParams{Lc: lc, Ctx: ctx, Config: cfg, Logger: logger})
	require.NoError(t, err)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Ctx: ctx, Config: cfg, Logger: logger})
	require.NoError(t, err)

	feed := impl.NewActivityFeed(cfg)
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: productRepo,
		Media:       mediaSvc,
		Publisher:   publisher,
		QRCode:      qrcode.NewQRCodeService(256, "M", "https://plants.example.com"),
		Feed:        feed,
		Config:      cfg,
		Logger:      logger,
	})
	accountUC := impl.NewAccountService(impl.AccountServiceParams{Auth: authProvider, UserRepo: userRepo, Logger: logger})
	catalogUC := impl.NewCatalogWatcher(impl.CatalogWatcherParams{Lc: lc, ProductRepo: productRepo, Config: cfg, Logger: logger})

	e := newEcho(ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
			UserHandler:     handler.NewUserHandler(accountUC),
			ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, CatalogUC: catalogUC, Logger: logger}),
			ActivityHandler: handler.NewActivityHandler(impl.NewActivityService(feed, productUC, logger)),
			AuthMiddleware:  middleware.NewAuthMiddleware(accountUC),
		},
	})

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	return &testApp{echo: e, lc: lc}
}

func (a *testApp) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, env
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, payload any) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return a.do(t, method, path, token, bytes.NewReader(raw), echo.MIMEApplicationJSON)
}

// signUp registers and signs in a user, returning the session token.
func (a *testApp) signUp(t *testing.T) string {
	t.Helper()

	code, env := a.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"fullName":        "Ada Gardener",
		"email":           "ada@example.com",
		"phoneNumber":     "0912345678",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"address":         "1 Greenhouse Lane",
		"agreeToTerms":    true,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Registration Successful", env.Message)

	code, env = a.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login Successfully", env.Message)

	var session handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.IDToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)

	return session.IDToken
}

func plantForm(t *testing.T, fields map[string]string, withImage bool) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "monstera.png")
		require.NoError(t, err)
		_, err = part.Write(pngBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestAPI_Health(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_ProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodGet, "/api/v1/products", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_FAILED", env.Error.Code)

	code, env = app.do(t, http.MethodGet, "/api/v1/products", "not-a-token", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_ID_TOKEN", env.Error.Message)
}

func TestAPI_PlantLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	body, contentType := plantForm(t, map[string]string{
		"name":        "Monstera",
		"type":        "Tropical",
		"price":       "25.99",
		"description": "Water weekly",
	}, true)
	code, env := app.do(t, http.MethodPost, "/api/v1/products", token, body, contentType)
	require.Equal(t, http.StatusCreated, code, "body: %s", env.Data)
	assert.Equal(t, "Product added Successfully!", env.Message)

	var created struct {
		Product struct {
			ID    string  `json:"productID"`
			Name  string  `json:"productName"`
			Price float64 `json:"price"`
			Image string  `json:"image"`
		} `json:"product"`
		PlantType string `json:"plantType"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	productID := created.Product.ID
	require.NotEmpty(t, productID)
	assert.Equal(t, "https://media.example.com/plants/monstera", created.Product.Image)
	assert.Equal(t, "Tropical", created.PlantType)

	code, env = app.do(t, http.MethodGet, "/api/v1/products/"+productID, token, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "product fetched", env.Message)

	body, contentType = plantForm(t, map[string]string{
		"name":            "Monstera Deliciosa",
		"type":            "Tropical",
		"price":           "30",
		"description":     "Water weekly",
		"currentImageUrl": "javascript:alert(1)",
	}, false)
	code, env = app.do(t, http.MethodPut, "/api/v1/products/"+productID, token, body, contentType)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product updated Successfully!", env.Message)

	code, env = app.do(t, http.MethodGet, "/api/v1/products/"+productID, token, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"image":"https://media.example.com/plants/monstera"`)

	code, env = app.do(t, http.MethodGet, "/api/v1/activities", token, nil, "")
	require.Equal(t, http.StatusOK, code)
	var feed handler.ActivityListResponse
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	assert.Equal(t, 1, feed.PlantCount)
	assert.Equal(t, "Plant Updated", feed.Activities[0].Title)
	assert.Equal(t, "Monstera Deliciosa • Tropical", feed.Activities[0].Description)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID+"/qrcode", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	code, env = app.doJSON(t, http.MethodPost, "/api/v1/products/scan", token, map[string]string{
		"qrData": "https://plants.example.com/products/" + productID,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Monstera Deliciosa")

	code, env = app.do(t, http.MethodDelete, "/api/v1/activities/"+feed.Activities[0].ID, token, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Plant deleted successfully", env.Message)

	code, env = app.do(t, http.MethodGet, "/api/v1/products/"+productID, token, nil, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestAPI_UpdateUnknownProduct(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	body, contentType := plantForm(t, map[string]string{
		"name":            "Monstera",
		"type":            "Tropical",
		"price":           "25",
		"description":     "Water weekly",
		"currentImageUrl": "javascript:alert(1)",
	}, false)
	code, env := app.do(t, http.MethodPut, "/api/v1/products/client-chosen-id", token, body, contentType)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	code, _ = app.do(t, http.MethodGet, "/api/v1/products/client-chosen-id", token, nil, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_CreatePlantValidation(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	body, contentType := plantForm(t, map[string]string{
		"name":        "Monstera",
		"type":        "Tropical",
		"price":       "abc",
		"description": "Water weekly",
	}, true)
	code, env := app.do(t, http.MethodPost, "/api/v1/products", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "Please enter valid price", env.Error.Message)

	body, contentType = plantForm(t, map[string]string{"name": "Monstera"}, false)
	code, env = app.do(t, http.MethodPost, "/api/v1/products", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please select a plant image", env.Error.Message)
}

func TestAPI_LogoutRevokesSession(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	code, env := app.do(t, http.MethodGet, "/auth/me", token, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Ada Gardener")

	code, env = app.do(t, http.MethodPost, "/auth/logout", token, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Logout successful", env.Message)

	code, env = app.do(t, http.MethodGet, "/auth/me", token, nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "TOKEN_REVOKED", env.Error.Message)
}

func TestAPI_PasswordReset(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t)

	code, env := app.doJSON(t, http.MethodPost, "/auth/password-reset", "", map[string]string{"email": "ada@example.com"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reset email sent to ada@example.com", env.Message)

	code, env = app.doJSON(t, http.MethodPost, "/auth/password-reset", "", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "AUTH_REQUEST_FAILED", env.Error.Code)
	assert.Equal(t, "EMAIL_NOT_FOUND", env.Error.Message)
}

func TestAPI_ProductStream(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	server := httptest.NewServer(app.echo)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/products/stream", nil)
	require.NoError(t, err)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get(echo.HeaderContentType))

	scanner := bufio.NewScanner(res.Body)
	var event, data string
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "event: "); ok {
			event = value
		}
		if value, ok := strings.CutPrefix(line, "data: "); ok && strings.Contains(value, `"loading":false`) {
			data = value

			break
		}
	}

	assert.Equal(t, "catalog", event)
	assert.Contains(t, data, `"products":[]`)
}
