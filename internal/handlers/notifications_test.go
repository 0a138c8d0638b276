package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/config"
	"github.com/denis333rus/procuratyra/internal/db"
	"github.com/denis333rus/procuratyra/internal/models"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Backend = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "test.db")

	database, err := db.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	return &Handler{
		DB:     database,
		Store:  sessions.NewCookieStore([]byte("test-secret")),
		Config: cfg,
		Log:    zap.NewNop(),
	}
}

// adminRequest issues a request carrying an admin session cookie.
func adminRequest(t *testing.T, h *Handler, target string) *http.Request {
	t.Helper()

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, _ := h.Store.Get(seed, "session")
	session.Values["is_admin"] = true
	require.NoError(t, session.Save(seed, rec))

	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNotificationsUnreadCount_Unauthenticated(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.NotificationsUnreadCount(rec, httptest.NewRequest(http.MethodGet, "/notifications/get_unread_count", nil))

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body["count"])
}

func TestNotificationsGetAll_UnauthenticatedIsEmptyArray(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.NotificationsGetAll(rec, httptest.NewRequest(http.MethodGet, "/notifications/get_all", nil))

	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNotificationsUnreadCount_AdminSeesRoleRows(t *testing.T) {
	h := testHandler(t)

	require.NoError(t, h.DB.NotifyRoles("Новая жалоба", "", db.NotificationTypeComplaint,
		models.RoleAdmin, models.RoleProsecutor))

	rec := httptest.NewRecorder()
	h.NotificationsUnreadCount(rec, adminRequest(t, h, "/notifications/get_unread_count"))

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body["count"])
}

func TestNotificationsGetAll_AdminRows(t *testing.T) {
	h := testHandler(t)

	require.NoError(t, h.DB.NotifyRoles("Новая заявка", "кандидат", db.NotificationTypeApplication,
		models.RoleAdmin))

	rec := httptest.NewRecorder()
	h.NotificationsGetAll(rec, adminRequest(t, h, "/notifications/get_all"))

	var items []models.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Новая заявка", items[0].Title)
	assert.Equal(t, models.RoleAdmin, items[0].RecipientRole)
	assert.False(t, items[0].IsRead)
}
