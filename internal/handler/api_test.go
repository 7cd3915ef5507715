package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prn-tf/mira-movil/internal/controller"
	"github.com/prn-tf/mira-movil/internal/credentials"
	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/lockout"
	"github.com/prn-tf/mira-movil/internal/notify"
	"github.com/prn-tf/mira-movil/internal/report"
	"github.com/prn-tf/mira-movil/internal/repository/memory"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	users := memory.NewUserRepository()
	equipment := memory.NewEquipmentRepository()
	movements := memory.NewMovementRepository()

	jperez := domain.NewUserAccount("Juan", "Pérez", "1710034065", "juan.perez@empresa.com", "jperez", domain.RolePurchasingLead, "2024-01-15")
	require.NoError(t, users.Create(t.Context(), jperez))

	excavator := domain.NewEquipment("EXC-001", "2024-01-10")
	excavator.Name = "Excavadora Principal"
	excavator.Type = "Excavadora"
	require.NoError(t, equipment.Create(t.Context(), excavator))

	mv := domain.NewMovementRecord(excavator.ID, excavator.Name, domain.MovementExit, "Proyecto Norte", "2024-07-20", "jperez", "")
	require.NoError(t, movements.Create(t.Context(), mv))

	c := controller.New(controller.Config{
		Users:           users,
		Equipment:       equipment,
		Movements:       movements,
		Ledger:          lockout.NewMemoryLedger(),
		Verifier:        credentials.LoginNameVerifier{},
		Notifier:        notify.NewLogNotifier(zerolog.Nop()),
		Renderer:        report.NewTextRenderer(),
		Artifacts:       report.NewMemoryStore(),
		Logger:          zerolog.Nop(),
		MaxAttempts:     3,
		LockoutDuration: 2 * time.Minute,
	})
	t.Cleanup(c.Close)

	return NewAPIHandler(APIConfig{Controller: c, Logger: zerolog.Nop()}).Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"login_name": "jperez",
		"password":   "jperez",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestAPI(t)
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestLoginEndpoint(t *testing.T) {
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"login_name": "jperez",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var res controller.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, controller.KindInvalidCredentials, res.Kind)

	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"login_name": "jperez",
		"password":   "jperez",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginLockoutStatus(t *testing.T) {
	h := newTestAPI(t)

	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
			"login_name": "jperez", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"login_name": "jperez", "password": "wrong",
	})
	assert.Equal(t, http.StatusLocked, rec.Code)

	// Correct credentials are still rejected while locked.
	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"login_name": "jperez", "password": "jperez",
	})
	assert.Equal(t, http.StatusLocked, rec.Code)
}

func TestStateEndpoint(t *testing.T) {
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.Authenticated)
	assert.Equal(t, domain.ScreenLogin, state.Screen)

	login(t, h)

	rec = doJSON(t, h, http.MethodGet, "/api/state", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "jperez", state.User.LoginName)
	assert.Equal(t, domain.ScreenHome, state.Screen)

	rec = doJSON(t, h, http.MethodPut, "/api/state/screen", map[string]string{"screen": "register-movement"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/state", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, domain.ScreenRegisterMovement, state.Screen)
}

func TestRegisterUserEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name: "created",
			body: map[string]any{
				"first_name": "Ana", "last_name": "Rodas",
				"cedula": "1712345675", "email": "ana.rodas@empresa.com",
				"login_name": "arodas", "password": "arodas",
				"role": "warehouse_keeper",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "checksum failure",
			body: map[string]any{
				"first_name": "Ana", "last_name": "Rodas",
				"cedula": "1710034066", "email": "ana.rodas@empresa.com",
				"login_name": "arodas", "password": "arodas",
				"role": "warehouse_keeper",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate login name",
			body: map[string]any{
				"first_name": "Ana", "last_name": "Rodas",
				"cedula": "1712345675", "email": "ana.rodas@empresa.com",
				"login_name": "jperez", "password": "jperez",
				"role": "warehouse_keeper",
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAPI(t)
			rec := doJSON(t, h, http.MethodPost, "/api/users/", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/users/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []*domain.UserAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)

	// jperez logged the seeded movement: the delete is blocked.
	rec = doJSON(t, h, http.MethodDelete, "/api/users/"+users[0].ID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/users/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterMovementEndpoint(t *testing.T) {
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/equipment/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var equipment []*domain.Equipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &equipment))
	require.Len(t, equipment, 1)

	body := map[string]string{
		"equipment_id": equipment[0].ID,
		"kind":         "entry",
		"site":         "Proyecto Sur",
	}

	// Logged out: rejected without touching state.
	rec = doJSON(t, h, http.MethodPost, "/api/movements/", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, h)

	rec = doJSON(t, h, http.MethodPost, "/api/movements/", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/movements/", nil)
	var movements []*domain.MovementRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movements))
	require.Len(t, movements, 2)
	assert.Equal(t, "jperez", movements[1].Actor)
	assert.Equal(t, "Excavadora Principal", movements[1].EquipmentName)
}

func TestReportEndpoints(t *testing.T) {
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/reports/", map[string]string{
		"date_from": "2024-07-01", "date_to": "2024-07-31",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var res controller.ReportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	require.NotEmpty(t, res.ArtifactID)

	rec = doJSON(t, h, http.MethodGet, "/api/reports/"+res.ArtifactID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "movement-report-")
	assert.NotEmpty(t, rec.Body.Bytes())

	// Filters matching nothing are a 404.
	rec = doJSON(t, h, http.MethodPost, "/api/reports/", map[string]string{
		"date_from": "2024-08-01", "date_to": "2024-08-31",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/reports/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
