package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/config"
	"github.com/denis333rus/procuratyra/internal/db"
	"github.com/denis333rus/procuratyra/internal/models"
	"github.com/denis333rus/procuratyra/internal/storage"
)

type Handler struct {
	DB        *db.Database
	Store     *sessions.CookieStore
	Templates *template.Template
	Config    *config.Config
	Uploader  *storage.Uploader
	Log       *zap.Logger

	validate *validator.Validate
}

func New(database *db.Database, store *sessions.CookieStore, cfg *config.Config, logger *zap.Logger) *Handler {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseGlob("templates/*.html"))
	return &Handler{
		DB:        database,
		Store:     store,
		Templates: tmpl,
		Config:    cfg,
		Uploader:  storage.NewUploader(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB, cfg.Uploads.AllowPDF),
		Log:       logger,
		validate:  validator.New(),
	}
}

func (h *Handler) session(r *http.Request) *sessions.Session {
	session, _ := h.Store.Get(r, "session")
	return session
}

func (h *Handler) isAdmin(r *http.Request) bool {
	return h.session(r).Values["is_admin"] == true
}

// callerRole resolves the notification audience of the current session:
// role name plus the provisioned account id (0 for the static roles).
func (h *Handler) callerRole(r *http.Request) (string, int) {
	session := h.session(r)
	if session.Values["is_admin"] == true {
		return models.RoleAdmin, 0
	}
	if session.Values["is_prosecutor"] == true {
		return models.RoleProsecutor, 0
	}
	role, _ := session.Values["role"].(string)
	id, _ := session.Values["user_id"].(int)
	return role, id
}

// claimerName identifies the prosecutor recorded on a claim.
func (h *Handler) claimerName(r *http.Request) string {
	session := h.session(r)
	if username, ok := session.Values["username"].(string); ok && username != "" {
		return username
	}
	return h.Config.Prosecutor.Username
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, msg string) {
	session := h.session(r)
	session.AddFlash(msg)
	session.Save(r, w)
}

func (h *Handler) flashes(w http.ResponseWriter, r *http.Request) []string {
	session := h.session(r)
	raw := session.Flashes()
	session.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error("template render failed", zap.String("template", name), zap.Error(err))
	}
}

// formValue trims the submitted field and substitutes fallback when blank.
func formValue(r *http.Request, name, fallback string) string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return fallback
	}
	return v
}
