package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/auth"
	"github.com/denis333rus/procuratyra/internal/db"
)

// AdminApproveApplication provisions an account and an employee from a
// pending application. The desired password is hashed here, before it ever
// reaches the users table.
func (h *Handler) AdminApproveApplication(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	app, err := h.DB.GetJobApplicationByID(id)
	if err != nil {
		h.flash(w, r, "Заявка не найдена")
		http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(app.Password)
	if err != nil {
		h.Log.Error("failed to hash applicant password", zap.Error(err))
		h.flash(w, r, "Не удалось одобрить заявку")
		http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
		return
	}

	switch err := h.DB.ApproveApplication(id, hash); {
	case errors.Is(err, db.ErrUsernameTaken):
		h.flash(w, r, "Логин «"+app.Login+"» уже занят, заявку нельзя одобрить")
	case errors.Is(err, db.ErrAlreadyDecided):
		h.flash(w, r, "Заявка уже рассмотрена")
	case err != nil:
		h.Log.Error("failed to approve application", zap.Int("id", id), zap.Error(err))
		h.flash(w, r, "Не удалось одобрить заявку")
	default:
		h.flash(w, r, "Заявка одобрена, аккаунт «"+app.Login+"» создан")
	}

	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

func (h *Handler) AdminRejectApplication(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	switch err := h.DB.RejectApplication(id); {
	case errors.Is(err, db.ErrNotFound):
		h.flash(w, r, "Заявка не найдена")
	case errors.Is(err, db.ErrAlreadyDecided):
		h.flash(w, r, "Заявка уже рассмотрена")
	case err != nil:
		h.Log.Error("failed to reject application", zap.Int("id", id), zap.Error(err))
		h.flash(w, r, "Не удалось отклонить заявку")
	default:
		h.flash(w, r, "Заявка отклонена")
	}

	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}
