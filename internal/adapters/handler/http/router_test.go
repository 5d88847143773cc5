package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/hardlevel/hardlevel-core/internal/adapters/handler/http"
	"github.com/hardlevel/hardlevel-core/internal/adapters/repository"
	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
)

const ownerPassword = "correct-horse-battery"

var ownerHash = sync.OnceValue(func() string {
	h, err := domain.HashPassword(ownerPassword)
	if err != nil {
		panic(err)
	}
	return h
})

type MockAvatarPort struct {
	mock.Mock
}

func (m *MockAvatarPort) Generate(ctx context.Context, input domain.GenerateAvatarInput) (*domain.AvatarResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvatarResult), args.Error(1)
}

type MockJournalPort struct {
	mock.Mock
}

func (m *MockJournalPort) Summarize(ctx context.Context, input domain.JournalAIInput) (*domain.JournalAIResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalAIResult), args.Error(1)
}

type testEnv struct {
	router  *gin.Engine
	repo    *repository.InMemoryLogRepository
	avatar  *MockAvatarPort
	journal *MockJournalPort
	tokens  *services.TokenService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		repo:    repository.NewInMemoryLogRepository(),
		avatar:  new(MockAvatarPort),
		journal: new(MockJournalPort),
		tokens:  services.NewTokenService("handler-test-secret", "hardlevel-test", time.Hour),
	}

	env.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler: adapterHTTP.NewAuthHandler(
			services.NewAuthService(domain.Owner{PasswordHash: ownerHash()}, env.tokens), nil),
		ChecklistHandler: adapterHTTP.NewChecklistHandler(services.NewChecklistService(env.repo), nil),
		HeatmapHandler:   adapterHTTP.NewHeatmapHandler(services.NewHeatmapService(env.repo), nil),
		AIHandler: adapterHTTP.NewAIHandler(
			services.NewAvatarService(env.avatar), services.NewJournalService(env.journal), nil),
		TokenService: env.tokens,
		StartTime:    time.Now(),
	})

	return env
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	tok, err := e.tokens.GenerateToken(domain.OwnerSubject)
	require.NoError(t, err)
	return tok
}

// do sends an authenticated request unless token is empty.
func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
