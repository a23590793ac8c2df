// Package integration exercises the full HTTP stack against an in-memory
// SQLite database: real router, real middleware, real backend facade.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"financas/internal/backend"
	"financas/internal/handlers"
	"financas/internal/middleware"
	"financas/internal/records"
	"financas/internal/session"
	"financas/internal/testutil"
	"financas/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// testApp bundles the router and its collaborators for one test.
type testApp struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions *session.Manager
}

// setupApp builds the full application router over an isolated test database.
// The wiring mirrors the server entrypoint, minus swagger and CORS.
func setupApp(t *testing.T, ownerScoped bool) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	store := backend.NewGorm(db)
	sessions := session.NewManager()
	formController := records.NewFormController(store, ownerScoped)
	listPresenter := records.NewListPresenter(store, ownerScoped)

	authHandler := handlers.NewAuthHandler(store, sessions)
	recordHandler := handlers.NewRecordHandler(formController, listPresenter)

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)

	recordRoutes := protected.Group("/records")
	recordRoutes.POST("", recordHandler.CreateRecord)
	recordRoutes.PUT("/:id", recordHandler.UpdateRecord)
	recordRoutes.GET("", recordHandler.ListRecords)

	return &testApp{router: router, db: db, sessions: sessions}
}

// request performs an HTTP request against the app. A non-empty token is sent
// as a bearer credential.
func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, w.Body.String())
	}
	return body
}

// register signs up a user through the API and returns the auth token.
func (a *testApp) register(t *testing.T, name, email, password string) string {
	t.Helper()

	w := a.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token after registration")
	}
	return token
}
