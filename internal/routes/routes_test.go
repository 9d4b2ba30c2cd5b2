package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/config"
	"github.com/BruksfildServices01/salon-agenda/internal/db"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{CORSOrigins: "*", InitRoute: "/", ClientDist: filepath.Join(t.TempDir(), "missing")}
	}
	d := audit.NewDispatcher(audit.New(zap.NewNop()), zap.NewNop())
	t.Cleanup(d.Close)
	return NewRouter(db.Memory(true), cfg, zap.NewNop(), d)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API is running 🚀", decode[map[string]string](t, w)["message"])

	w = do(t, r, http.MethodGet, "/api/helloworld", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, World!", decode[map[string]string](t, w)["message"])
}

func TestClients_ListSortedBySurname(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	clients := decode[[]models.Client](t, w)
	require.Len(t, clients, 3)
	assert.Equal(t, "Bianchi", clients[0].Cognome)
	assert.Equal(t, "Rossi", clients[1].Cognome)
	assert.Equal(t, "Verdi", clients[2].Cognome)
}

func TestClients_GetAndNotFound(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/clients/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Marco", decode[models.Client](t, w).Nome)

	w = do(t, r, http.MethodGet, "/api/clients/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Client not found"}`, w.Body.String())
}

func TestClients_CreateAndUpdate(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/clients", map[string]string{
		"nome":             "Luca",
		"cognome":          "Neri",
		"numeroDiTelefono": "+39 340 0000000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Client](t, w)
	assert.Equal(t, "4", created.ID)

	w = do(t, r, http.MethodPut, "/api/clients/4", map[string]string{"email": "luca@email.it"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Client](t, w)
	assert.Equal(t, "luca@email.it", updated.Email)
	assert.Equal(t, "Luca", updated.Nome)
	assert.Equal(t, "+39 340 0000000", updated.NumeroDiTelefono)

	w = do(t, r, http.MethodGet, "/api/clients/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, updated, decode[models.Client](t, w))
}

func TestClients_UpdateMissingDoesNotCreate(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPut, "/api/clients/77", map[string]string{"nome": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/clients", nil)
	assert.Len(t, decode[[]models.Client](t, w), 3)
}

func TestClients_Failures(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/clients", `{"nome": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/clients", map[string]string{"nome": "Solo"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create client"}`, w.Body.String())
}

func TestAppointments_CreateAndListByMonth(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, day := range []string{"2024-01-31", "2024-02-29", "2024-02-01", "2024-03-01"} {
		w := do(t, r, http.MethodPost, "/api/appointments", map[string]any{
			"day":      day,
			"time":     "10:00",
			"duration": 60,
			"location": "Segrate",
			"client":   map[string]string{"id": "1", "name": "Alice Rossi"},
			"note":     "prima visita",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		ap := decode[models.Appointment](t, w)
		assert.NotEmpty(t, ap.ID)
		assert.False(t, ap.CreatedAt.IsZero())
		assert.Equal(t, "Alice Rossi", ap.Client.Name)
	}

	w := do(t, r, http.MethodGet, "/api/appointments?month=2024-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feb := decode[[]models.Appointment](t, w)
	require.Len(t, feb, 2)
	assert.Equal(t, "2024-02-01", feb[0].Day)
	assert.Equal(t, "2024-02-29", feb[1].Day)

	w = do(t, r, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Appointment](t, w), 4)

	w = do(t, r, http.MethodGet, "/api/appointments?month=2031-07", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAppointments_DurationAsString(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/appointments",
		`{"day":"2024-05-02","time":"09:30","duration":"45","location":"Milan","client":{"id":"2","name":"Marco Bianchi"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 45, decode[models.Appointment](t, w).Duration)
}

func TestAppointments_Rejected(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/appointments", map[string]any{
		"day": "2024-05-02", "time": "09:30", "duration": 30, "location": "Rome",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create appointment"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/appointments", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSnapshotSurvivesClientRename(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/appointments", map[string]any{
		"day": "2024-06-10", "time": "11:00", "duration": 30, "location": "Milan",
		"client": map[string]string{"id": "3", "name": "Giulia Verdi"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPut, "/api/clients/3", map[string]string{"cognome": "Gialli"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/appointments?month=2024-06", nil)
	list := decode[[]models.Appointment](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Giulia Verdi", list[0].Client.Name)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)
	do(t, r, http.MethodGet, "/api/clients", nil)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salon_http_requests_total")
}

func TestMetricsCountRecoveredPanics(t *testing.T) {
	r := newTestRouter(t, nil)
	r.GET("/api/panic", func(*gin.Context) { panic("boom") })

	w := do(t, r, http.MethodGet, "/api/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())

	body := do(t, r, http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, body, `salon_http_requests_total{method="GET",path="/api/panic",status="500"} 1`)
	assert.Contains(t, body, `salon_http_request_duration_seconds_count{method="GET",path="/api/panic"} 1`)
}

func TestUnknownAPIRoute(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestWebClientFallback(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>agenda</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	r := newTestRouter(t, &config.Config{CORSOrigins: "*", InitRoute: "/", ClientDist: dist})

	w := do(t, r, http.MethodGet, "/assets/app.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(t, r, http.MethodGet, "/clients/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agenda")

	w = do(t, r, http.MethodGet, "/api/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebClientOutsideInitRoute(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>agenda</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "app.js"), []byte("console.log(1)"), 0o644))

	r := newTestRouter(t, &config.Config{CORSOrigins: "*", InitRoute: "/agenda", ClientDist: dist})

	w := do(t, r, http.MethodGet, "/agenda/app.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(t, r, http.MethodGet, "/agenda/calendar/2024-02", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agenda")

	for _, p := range []string{"/", "/app.js", "/other", "/agendas"} {
		w = do(t, r, http.MethodGet, p, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, p)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String(), p)
	}
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, &config.Config{
		CORSOrigins:     "*",
		InitRoute:       "/",
		RateLimitPerSec: 0.001,
		RateLimitBurst:  1,
	})

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/health", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, http.MethodGet, "/api/health", nil).Code)
}
