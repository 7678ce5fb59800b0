package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petwork_backend/internal/config"
	"petwork_backend/internal/database"
	"petwork_backend/internal/email"
	"petwork_backend/internal/routes"
	"petwork_backend/internal/services"
	"petwork_backend/internal/storage"

	"gorm.io/gorm"
)

// TestServer hosts the full API against the test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config

	// Emails collects everything "sent" during the test run.
	Emails *FakeEmailProvider
}

// FakeEmailProvider records outgoing mail instead of sending it.
type FakeEmailProvider struct {
	Sent []*email.Email
}

func (p *FakeEmailProvider) Send(e *email.Email) error {
	p.Sent = append(p.Sent, e)
	return nil
}

func (p *FakeEmailProvider) Validate() error { return nil }
func (p *FakeEmailProvider) Close() error    { return nil }

// NewTestServer connects to the database named by DATABASE_URL,
// migrates the schema and starts an httptest server with local file
// storage and a recording email provider.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "/api/files",
	})
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}

	emails := &FakeEmailProvider{}
	registry := services.NewRegistry(cfg, store, emails)
	router := routes.Setup(db, cfg, registry)

	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
		Emails: emails,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables empties every table between test groups.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec("TRUNCATE TABLE users, sessions, locations, pets, jobs, applications RESTART IDENTITY CASCADE").Error
	if err != nil {
		panic(err)
	}
}

// SendRequest performs a JSON API call. A non-empty session token is
// sent as the session cookie.
func (ts *TestServer) SendRequest(t *testing.T, method, path, session string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if session != "" {
		req.AddCookie(&http.Cookie{Name: ts.Config.Session.CookieName, Value: session})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}

// SessionCookie extracts the session token from a login response.
func (ts *TestServer) SessionCookie(res *http.Response) string {
	for _, c := range res.Cookies() {
		if c.Name == ts.Config.Session.CookieName {
			return c.Value
		}
	}
	return ""
}
