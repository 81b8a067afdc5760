package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wellness/config"
	httpmiddleware "wellness/internal/delivery/http/middleware"
	"wellness/internal/delivery/http/router"
	"wellness/internal/delivery/http/router/handler"
	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/service"
	"wellness/internal/infra/metrics"
	mockusecase "wellness/internal/mocks/usecase"
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid.jwt.token"

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Details []string `json:"details"`
		Stack   string   `json:"stack"`
	} `json:"error"`
}

type testServer struct {
	echo     *echo.Echo
	sessions *mockusecase.MockSessionUsecase
	identity *mockusecase.MockIdentityUsecase
	moods    *mockusecase.MockMoodUsecase
	metrics  *metrics.Metrics
}

func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.ServiceName = "wellness"
	cfg.HTTP.BasePath = "/api"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	ts := &testServer{
		sessions: mockusecase.NewMockSessionUsecase(t),
		identity: mockusecase.NewMockIdentityUsecase(t),
		moods:    mockusecase.NewMockMoodUsecase(t),
		metrics:  m,
	}

	ts.echo = NewEcho(HTTPParams{
		Config:   cfg,
		Logger:   logger,
		Metrics:  m,
		Registry: reg,
		RouterParams: router.RouterParams{
			Config:        cfg,
			AuthHandler:   handler.NewAuthHandler(ts.identity, logger),
			MoodHandler:   handler.NewMoodHandler(ts.moods, logger),
			HealthHandler: handler.NewHealthHandler(cfg),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(httpmiddleware.AuthMiddlewareParams{
				Sessions: ts.sessions,
				Metrics:  m,
			}),
		},
	})

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) &&
		strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (ts *testServer) expectSession(userID string) *usecase.Session {
	session := &usecase.Session{
		Identity:  service.TokenIdentity{UserID: userID, Name: "Ana", Email: "ana@example.com"},
		Token:     validToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	ts.sessions.EXPECT().Authenticate(mock.Anything, validToken).Return(session, nil)

	return session
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:               "u-1",
		Name:             "Ana",
		Email:            "ana@example.com",
		PasswordHash:     "$2a$12$secret",
		LoginProvider:    entity.LoginProviderPassword,
		RegistrationDate: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRegister_Created(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	expiresAt := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	ts.identity.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{User: sampleUser(), Token: "jwt", ExpiresAt: expiresAt}, nil)

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/register",
		`{"name":"  Ana ","email":"ana@example.com","password":"secret1"}`, "")

	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Equal(t, "Usuário criado com sucesso", env.Message)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), `"success"`)

	var data struct {
		User      map[string]any `json:"user"`
		Token     string         `json:"token"`
		ExpiresAt string         `json:"expiresAt"`
	}
	decodeBody(t, rec, &data)
	assert.Equal(t, "jwt", data.Token)
	assert.Equal(t, "2025-01-08T09:00:00.000Z", data.ExpiresAt)
	assert.Equal(t, "ana@example.com", data.User["email"])
	assert.Equal(t, "2025-01-01T09:00:00.000Z", data.User["registrationDate"])
	assert.NotContains(t, data.User, "passwordHash")
}

func TestRegister_ValidationDetails(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/register",
		`{"name":"A","email":"not-an-email","password":"123"}`, "")

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "Dados inválidos", env.Message)
	assert.ElementsMatch(t, []string{
		"Nome deve ter pelo menos 2 caracteres",
		"Email inválido",
		"Senha deve ter pelo menos 6 caracteres",
	}, env.Error.Details)
}

func TestRegister_MalformedBody(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/register", `{"name":`, "")

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []string{"Corpo da requisição inválido"}, env.Error.Details)
}

func TestRegister_EmailInUse(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.identity.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrEmailInUse))

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret1"}`, "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "EMAIL_IN_USE", env.Error.Code)
	assert.Equal(t, "Email já está em uso", env.Message)
}

func TestGoogleLogin_PassesTokenThrough(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.identity.EXPECT().
		FederatedLogin(mock.Anything, usecase.FederatedLoginInput{IdentityToken: "g-token", Email: "ana@example.com", Name: "Ana"}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidGoogleToken))

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/google-login",
		`{"googleToken":"g-token","email":"ana@example.com","name":"Ana"}`, "")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_GOOGLE_TOKEN", env.Error.Code)
}

func TestGuard_RejectionCodes(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing token", token: "", err: domainerrors.ErrTokenRequired, wantStatus: nethttp.StatusUnauthorized, wantCode: "TOKEN_REQUIRED"},
		{name: "blacklisted", token: "old", err: domainerrors.ErrTokenBlacklisted, wantStatus: nethttp.StatusForbidden, wantCode: "TOKEN_BLACKLISTED"},
		{name: "expired", token: "stale", err: domainerrors.ErrTokenExpired, wantStatus: nethttp.StatusUnauthorized, wantCode: "TOKEN_EXPIRED"},
		{name: "invalid", token: "forged", err: domainerrors.ErrTokenInvalid, wantStatus: nethttp.StatusForbidden, wantCode: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.EnvProduction)
			ts.sessions.EXPECT().Authenticate(mock.Anything, tt.token).Return(nil, errors.WithStack(tt.err))

			rec, env := ts.do(t, nethttp.MethodGet, "/api/mood", "", tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.InDelta(t, 1, testutil.ToFloat64(ts.metrics.GuardRejections.WithLabelValues(tt.wantCode)), 0)
		})
	}
}

func TestMe_ReturnsUserWithoutHash(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	ts.identity.EXPECT().GetByID(mock.Anything, "u-1").Return(sampleUser(), nil)

	rec, _ := ts.do(t, nethttp.MethodGet, "/api/auth/me", "", validToken)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var body struct {
		User map[string]any `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "ana@example.com", body.User["email"])
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestUpdateMe_NilNameIsForwarded(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	ts.identity.EXPECT().UpdateProfile(mock.Anything, "u-1", usecase.UpdateProfileInput{}).
		Return(nil, errors.WithStack(domainerrors.ErrNoUpdateData))

	rec, env := ts.do(t, nethttp.MethodPut, "/api/auth/me", `{}`, validToken)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_UPDATE_DATA", env.Error.Code)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	session := ts.expectSession("u-1")
	ts.identity.EXPECT().Logout(mock.Anything, session).Return()

	rec, env := ts.do(t, nethttp.MethodPost, "/api/auth/logout", "", validToken)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout realizado com sucesso"}`, rec.Body.String())
	assert.Nil(t, env.Error)
}

func TestLogoutAll(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	session := ts.expectSession("u-1")
	ts.identity.EXPECT().LogoutAll(mock.Anything, session).Return()

	rec, _ := ts.do(t, nethttp.MethodPost, "/api/auth/logout-all", "", validToken)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestMoodList_BindsQuery(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	entry := &entity.MoodEntry{
		ID:               "m-1",
		UserID:           "u-1",
		MoodType:         entity.MoodHappy,
		Level:            4,
		RegistrationDate: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		CreatedAt:        time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	ts.moods.EXPECT().
		List(mock.Anything, "u-1", usecase.ListMoodInput{StartDate: "2025-01-01", EndDate: "2025-01-31", Limit: 5}).
		Return([]*entity.MoodEntry{entry}, nil)

	rec, _ := ts.do(t, nethttp.MethodGet, "/api/mood?startDate=2025-01-01&endDate=2025-01-31&limit=5", "", validToken)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var data struct {
		MoodEntries []map[string]any `json:"moodEntries"`
		Total       int              `json:"total"`
	}
	decodeBody(t, rec, &data)
	assert.Equal(t, 1, data.Total)
	assert.Equal(t, "Feliz", data.MoodEntries[0]["moodType"])
	assert.Nil(t, data.MoodEntries[0]["updatedAt"])
}

func TestMoodList_InvalidLimit(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")

	rec, env := ts.do(t, nethttp.MethodGet, "/api/mood?limit=abc", "", validToken)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []string{"limit deve ser um número válido"}, env.Error.Details)
}

func TestMoodCreate(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	note := "dia bom"
	ts.moods.EXPECT().
		Create(mock.Anything, "u-1", usecase.CreateMoodInput{MoodType: "Feliz", Level: 4, ShortDescription: &note}).
		Return(&entity.MoodEntry{ID: "m-1", UserID: "u-1", MoodType: entity.MoodHappy, Level: 4, ShortDescription: note}, nil)

	rec, env := ts.do(t, nethttp.MethodPost, "/api/mood", `{"moodType":"Feliz","level":4,"shortDescription":"dia bom"}`, validToken)

	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Equal(t, "Registro de humor criado com sucesso", env.Message)
	var body struct {
		MoodEntry map[string]any `json:"moodEntry"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "m-1", body.MoodEntry["id"])
	assert.Equal(t, "dia bom", body.MoodEntry["shortDescription"])
}

func TestMoodCreate_DescriptionTooLong(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	body := `{"moodType":"Feliz","level":4,"shortDescription":"` + strings.Repeat("a", 501) + `"}`

	rec, env := ts.do(t, nethttp.MethodPost, "/api/mood", body, validToken)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Descrição deve ter no máximo 500 caracteres"}, env.Error.Details)
	ts.moods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoodUpdate_AccessDenied(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-2")
	level := 5
	ts.moods.EXPECT().
		Update(mock.Anything, "m-1", "u-2", usecase.UpdateMoodInput{Level: &level}).
		Return(nil, errors.WithStack(domainerrors.ErrAccessDenied))

	rec, env := ts.do(t, nethttp.MethodPut, "/api/mood/m-1", `{"level":5}`, validToken)

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCESS_DENIED", env.Error.Code)
}

func TestMoodDelete_NotFound(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	ts.moods.EXPECT().Delete(mock.Anything, "missing", "u-1").Return(errors.WithStack(domainerrors.ErrMoodNotFound))

	rec, env := ts.do(t, nethttp.MethodDelete, "/api/mood/missing", "", validToken)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "MOOD_NOT_FOUND", env.Error.Code)
}

func TestMoodStats(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	ts.moods.EXPECT().
		Stats(mock.Anything, "u-1", usecase.StatsInput{StartDate: "2025-01-01"}).
		Return(&entity.MoodStats{
			TotalEntries: 2,
			AverageMood:  3.5,
			MoodDistribution: map[entity.MoodType]int{
				entity.MoodSad: 0, entity.MoodAnxious: 0, entity.MoodNeutral: 1, entity.MoodHappy: 1, entity.MoodMotivated: 0,
			},
			Trend: entity.TrendStable,
		}, nil)

	rec, env := ts.do(t, nethttp.MethodGet, "/api/mood/stats?startDate=2025-01-01", "", validToken)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var data struct {
		TotalEntries     int            `json:"totalEntries"`
		AverageMood      float64        `json:"averageMood"`
		MoodDistribution map[string]int `json:"moodDistribution"`
		LastEntry        any            `json:"lastEntry"`
		Trend            string         `json:"trend"`
	}
	assert.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.TotalEntries)
	assert.InDelta(t, 3.5, data.AverageMood, 0.001)
	assert.Len(t, data.MoodDistribution, 5)
	assert.Nil(t, data.LastEntry)
	assert.Equal(t, "stable", data.Trend)
}

func TestMoodTypes_OptionalAuth(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.moods.EXPECT().MoodTypes().Return(entity.MoodTypes())
	ts.sessions.EXPECT().Authenticate(mock.Anything, "garbage").Return(nil, errors.WithStack(domainerrors.ErrTokenInvalid))

	for _, token := range []string{"", "garbage"} {
		rec, _ := ts.do(t, nethttp.MethodGet, "/api/mood-types", "", token)

		require.Equal(t, nethttp.StatusOK, rec.Code, "token %q", token)
		require.True(t, strings.HasPrefix(rec.Body.String(), "["), "mood types must be a bare array")
		var types []map[string]any
		decodeBody(t, rec, &types)
		require.Len(t, types, 5)
		assert.Equal(t, "Triste", types[0]["name"])
		assert.Equal(t, "#9B59B6", types[4]["color"])
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	rec, env := ts.do(t, nethttp.MethodGet, "/api/nope", "", "")

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Rota GET /api/nope não encontrada", env.Message)
}

func TestInternalError_HiddenInProduction(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ts.expectSession("u-1")
	ts.moods.EXPECT().Delete(mock.Anything, "m-1", "u-1").Return(errors.New("connection reset"))

	rec, env := ts.do(t, nethttp.MethodDelete, "/api/mood/m-1", "", validToken)

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Equal(t, "Erro interno do servidor", env.Message)
	assert.Empty(t, env.Error.Stack)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestInternalError_StackInDevelopment(t *testing.T) {
	ts := newTestServer(t, config.EnvDevelopment)
	ts.expectSession("u-1")
	ts.moods.EXPECT().Delete(mock.Anything, "m-1", "u-1").Return(errors.New("connection reset"))

	rec, env := ts.do(t, nethttp.MethodDelete, "/api/mood/m-1", "", validToken)

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Contains(t, env.Message, "connection reset")
	assert.NotEmpty(t, env.Error.Stack)
}

func TestHealthAndIndex(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	rec, _ := ts.do(t, nethttp.MethodGet, "/health", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec, env := ts.do(t, nethttp.MethodGet, "/", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "API Bem-Estar funcionando!", env.Message)
	assert.Contains(t, rec.Body.String(), `"moodTypes":"/api/mood-types"`)
}

func TestRequestIDAndMetrics(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	assert.Equal(t, "client-id-1", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wellness_http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`)
}
