package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/repository/demo"
)

func TestWriteResponseMirrorsEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeResponse(rec, http.StatusCreated, api.OK("made"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":"made","error":null,"success":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	writeResponse(rec, http.StatusOK, api.Fail[string]("broken"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"data":null,"error":"broken","success":false}`, rec.Body.String())
}

func TestRegisterValidatesInput(t *testing.T) {
	h := NewAuthHandler(auth.NewService(demo.NewStore().Profiles, "secret", true))

	body := `{"email":"bad","full_name":"","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDemoLoginEndToEnd(t *testing.T) {
	h := NewAuthHandler(auth.NewService(demo.NewStore().Profiles, "secret", true))

	body := `{"email":"manager@demo.com","password":"anything"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), `"role":"manager"`)
}

func TestProjectGetRejectsBadID(t *testing.T) {
	h := NewProjectHandler(api.NewService(demo.NewStore(), zap.NewNop().Sugar()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
