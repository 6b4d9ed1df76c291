package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"vetclinic/internal/auth"
	"vetclinic/internal/config"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/handler"
	"vetclinic/internal/repository/memory"
	"vetclinic/internal/service"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := &config.Config{Environment: config.EnvDevelopment, AppVersion: "1.0.0", PhoneRegion: "BR"}
	log := zap.NewNop()

	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens, err := auth.NewJWTService("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	e := echo.New()
	Register(e, cfg, log, Handlers{
		Auth:          handler.NewAuthHandler(service.NewAuthService(store, hasher, tokens, log)),
		Users:         handler.NewUserHandler(service.NewUserService(store, nil, hasher)),
		Clinics:       handler.NewClinicHandler(service.NewClinicService(store, nil)),
		Veterinarians: handler.NewVeterinarianHandler(service.NewVeterinarianService(store, nil)),
		Tutors:        handler.NewTutorHandler(service.NewTutorService(store, nil, cfg.PhoneRegion)),
		Pets:          handler.NewPetHandler(service.NewPetService(store, nil)),
		Visits:        handler.NewVisitHandler(service.NewVisitService(store, nil)),
		Health:        handler.NewHealthHandler(cfg),
	}, auth.Middleware(auth.NewResolver(tokens, store.Users())))
	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"demo","email":"demo@veterinaria.com","password":"demo123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = login(t, e, "demo", "demo123")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var token service.AccessToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

func TestRegisterLoginAndList(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodGet, "/api/clinics", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/clinics", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestRegisterHidesPasswordHash(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"demo","email":"demo@veterinaria.com","password":"demo123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestLoginFailure(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e)

	for _, creds := range [][2]string{{"demo", "wrong"}, {"ghost", "demo123"}} {
		rec := login(t, e, creds[0], creds[1])
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

		var resp apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Code)
	}
}

func TestMe(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"demo"`)
}

func TestClinicalWorkflow(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/clinics", token, `{"name":"Clínica VetLife","address":"Rua das Flores, 123 - Centro","city":"São Paulo"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":1`)

	rec = doJSON(e, http.MethodPost, "/api/veterinarians", token, `{"name":"Dr. João Silva","license_number":"SP-12345","specialty":"Clínica Geral","clinic_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/veterinarians", token, `{"name":"Dra. Maria Santos","license_number":"SP-12345","clinic_id":1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/tutors", token, `{"name":"Carlos Oliveira","phone":"(11) 99999-1234","email":"carlos@email.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"phone":"+5511999991234"`)

	rec = doJSON(e, http.MethodPost, "/api/pets", token, `{"name":"Rex","species":"Cão","tutor_id":999999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "TUTOR_NOT_FOUND")

	rec = doJSON(e, http.MethodPost, "/api/pets", token, `{"name":"Rex","species":"Cão","breed":"Golden Retriever","age":3,"tutor_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/visits", token, `{"description":"Consulta de rotina","pet_id":1,"veterinarian_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VETERINARIAN_NOT_FOUND")

	rec = doJSON(e, http.MethodPost, "/api/visits", token, `{"description":"Consulta de rotina","pet_id":1,"veterinarian_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPatch, "/api/pets/1", token, `{"age":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"age":4`)
	assert.Contains(t, rec.Body.String(), `"breed":"Golden Retriever"`)

	rec = doJSON(e, http.MethodGet, "/api/clinics/1/veterinarians", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SP-12345")

	rec = doJSON(e, http.MethodDelete, "/api/pets/1", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESOURCE_IN_USE")

	rec = doJSON(e, http.MethodDelete, "/api/visits/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Consulta de rotina")

	rec = doJSON(e, http.MethodGet, "/api/visits/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrors(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/pets", token, `{"species":"Cão"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, "is required", resp.Fields["name"])
	assert.Equal(t, "is required", resp.Fields["tutor_id"])

	rec = doJSON(e, http.MethodPost, "/api/tutors", token, `{"name":"Ana","phone":"abc"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be a valid phone number")

	rec = doJSON(e, http.MethodPost, "/api/clinics", token, `{"name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/clinics/abc", token, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/clinics?limit=x", token, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPublicEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","environment":"development","version":"1.0.0"}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, "ok", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bem-vindo")
}

func TestBlankNaturalKeysRejected(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"     ","email":"blank@veterinaria.com","password":"demo123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"username":"is required"`)

	rec = doJSON(e, http.MethodPost, "/api/clinics", token, `{"name":"Clínica VetLife","city":"São Paulo"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/veterinarians", token, `{"name":"Dr. João Silva","license_number":"   ","clinic_id":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"license_number":"is required"`)
}
