package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer - роутер приложения поверх SQLite в памяти
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	db := testutil.NewDB(t)

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
		Tokens: auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute),
	}
}

func (ts *TestServer) Token(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.Tokens.GenerateToken(userID)
	if err != nil {
		t.Fatalf("Не удалось выпустить токен: %v", err)
	}
	return token
}

// SendRequest выполняет запрос и возвращает код ответа и тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (int, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w.Code, w.Body.String()
}

func decode(t *testing.T, body string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("Не удалось распарсить JSON %q: %v", body, err)
	}
}

