package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/auth"
	"github.com/denis333rus/procuratyra/internal/models"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", map[string]interface{}{})
}

// LoginSubmit is the unified credential entry: the configured admin pair,
// the configured prosecutor pair, and provisioned accounts all land here.
// Configured credentials arrive as bcrypt hashes, never as source constants.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.render(w, "login.html", map[string]interface{}{"Error": "Укажите логин и пароль"})
		return
	}

	session := h.session(r)

	if username == h.Config.Admin.Username && h.Config.Admin.PasswordHash != "" &&
		auth.CheckPassword(password, h.Config.Admin.PasswordHash) == nil {
		session.Values["is_admin"] = true
		session.Save(r, w)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if username == h.Config.Prosecutor.Username && h.Config.Prosecutor.PasswordHash != "" &&
		auth.CheckPassword(password, h.Config.Prosecutor.PasswordHash) == nil {
		session.Values["is_prosecutor"] = true
		session.Values["username"] = username
		session.Save(r, w)
		http.Redirect(w, r, "/prosecutor", http.StatusSeeOther)
		return
	}

	user, err := h.DB.GetUserByUsername(username)
	if err == nil && auth.CheckPassword(password, user.PasswordHash) == nil {
		session.Values["user_id"] = user.ID
		session.Values["username"] = user.Username
		session.Values["full_name"] = user.FullName
		session.Values["role"] = user.Role
		if user.Role == models.RoleAdmin {
			session.Values["is_admin"] = true
		}
		session.Save(r, w)

		h.Log.Info("user logged in", zap.String("username", user.Username), zap.String("role", user.Role))

		switch user.Role {
		case models.RoleProsecutor:
			http.Redirect(w, r, "/prosecutor", http.StatusSeeOther)
		case models.RoleAdmin:
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
		default:
			h.render(w, "submitted.html", map[string]interface{}{
				"Title":   "Вход",
				"Message": "Здравствуйте, " + user.FullName + "!",
			})
		}
		return
	}

	h.render(w, "login.html", map[string]interface{}{"Error": "Неверный логин или пароль"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.Options.MaxAge = -1
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
