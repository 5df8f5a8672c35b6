package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botovelho/barbearia-api/internal/cache"
	"github.com/botovelho/barbearia-api/internal/config"
	"github.com/botovelho/barbearia-api/internal/routes"
	"github.com/botovelho/barbearia-api/internal/store"
)

// Terça-feira bem no futuro: nunca cai no passado nem no domingo.
const (
	openDate = "2030-01-08"
	openTime = "09:00"
)

func setupAPI(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerPort:     "0",
		JWTSecret:      "test-secret",
		AdminPassword:  "admin123",
		DataFile:       filepath.Join(t.TempDir(), "db.json"),
		UploadProvider: "local",
		UploadDir:      t.TempDir(),
		UploadMaxMB:    5,
	}

	st, err := store.New(cfg.DataFile, cfg.AdminPassword, zerolog.Nop())
	require.NoError(t, err)

	r := gin.New()
	routes.RegisterRoutes(r, st, cache.New("", "", 0, zerolog.Nop()), cfg, zerolog.Nop())
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

////////////////////////////////////////////////////////
// PÚBLICO
////////////////////////////////////////////////////////

func TestBusinessBootstrap(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/public/business", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Contains(t, body, "business")
	assert.Contains(t, body, "services")
	assert.Contains(t, body, "barbers")
	assert.Contains(t, body, "about")

	business := body["business"].(map[string]any)
	assert.Equal(t, "Boto Velho Barbearia", business["name"])
}

func TestAvailabilityValidation(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/public/availability", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date_required", decode(t, w)["error_code"])

	w = doJSON(t, r, http.MethodGet, "/api/public/availability?date=08-01-2030", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_format", decode(t, w)["error_code"])

	w = doJSON(t, r, http.MethodGet, "/api/public/availability?date="+openDate, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, openDate, body["date"])
	assert.NotEmpty(t, body["slots"])
}

func TestCreateListCancelFlow(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/public/appointments", gin.H{
		"client_name":  "Carlos Souza",
		"client_phone": "(69) 98888-7777",
		"service_id":   "corte",
		"barber_id":    "angelo",
		"date":         openDate,
		"time":         openTime,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)

	// autoatendimento: busca pelo telefone só com dígitos
	w = doJSON(t, r, http.MethodGet, "/api/public/appointments?phone=69988887777", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.EqualValues(t, 1, list["total"])

	w = doJSON(t, r, http.MethodDelete, "/api/public/appointments/"+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/public/appointments/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDoubleBookingSameBarberConflicts(t *testing.T) {
	r, _ := setupAPI(t)

	payload := gin.H{
		"client_name":  "Carlos Souza",
		"client_phone": "69988887777",
		"service_id":   "corte",
		"barber_id":    "angelo",
		"date":         openDate,
		"time":         openTime,
	}

	w := doJSON(t, r, http.MethodPost, "/api/public/appointments", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/public/appointments", payload, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "barber_busy", decode(t, w)["reason"])
}

func TestAvailableDatesSkipSundays(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/public/availability/dates?days=7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days []string `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Days)
	for _, d := range resp.Days {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

////////////////////////////////////////////////////////
// AUTH + ADMIN
////////////////////////////////////////////////////////

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"password": "errada"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthCheck(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/check", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["authenticated"])

	token := login(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/auth/check", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["authenticated"])
}

func TestAdminRequiresToken(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/schedule", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/schedule", nil, "token-invalido")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminUpdateScheduleAffectsAvailability(t *testing.T) {
	r, _ := setupAPI(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/schedule", gin.H{
		"open_time":       "10:00",
		"close_time":      "12:00",
		"slot_minutes":    60,
		"closed_weekdays": []int{0},
		"breaks":          []gin.H{},
		"blocked_dates":   []string{},
		"blocked_slots":   []gin.H{},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/public/availability?date="+openDate, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []struct {
			Time      string `json:"time"`
			Available bool   `json:"available"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	times := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		times = append(times, s.Time)
	}
	assert.Equal(t, []string{"10:00", "11:00"}, times)
}

func TestAdminScheduleSanitizesGarbage(t *testing.T) {
	r, _ := setupAPI(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/schedule", gin.H{
		"open_time":    "9h",
		"close_time":   "19:00",
		"slot_minutes": 5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/schedule", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "09:00", body["open_time"])
	assert.EqualValues(t, 30, body["slot_minutes"])
}

func TestAdminListAppointmentsWrapsTotal(t *testing.T) {
	r, _ := setupAPI(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/public/appointments", gin.H{
		"client_name":  "Carlos Souza",
		"client_phone": "69988887777",
		"service_id":   "corte",
		"date":         openDate,
		"time":         openTime,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/appointments", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["data"], 1)
}

func TestAdminUpdateBarbersReplacesRoster(t *testing.T) {
	r, st := setupAPI(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/barbers", []gin.H{
		{"id": "novo", "name": "Novo Barbeiro", "role": "Barbeiro"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Barbers, 1)
	assert.Equal(t, "novo", doc.Barbers[0].ID)
}
