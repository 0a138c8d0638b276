package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// ProsecutorPanel shows complaints with their claim state and the caller's
// document drafts.
func (h *Handler) ProsecutorPanel(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.DB.GetComplaints(200)
	if err != nil {
		complaints = nil
	}
	drafts, err := h.DB.GetDrafts(200)
	if err != nil {
		drafts = nil
	}

	h.render(w, "prosecutor.html", map[string]interface{}{
		"Complaints": complaints,
		"Drafts":     drafts,
		"Claimer":    h.claimerName(r),
		"Flashes":    h.flashes(w, r),
	})
}

// ProsecutorClaim takes ownership of a complaint; the first claimant wins
// and the claim is permanent.
func (h *Handler) ProsecutorClaim(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	won, err := h.DB.ClaimComplaint(id, h.claimerName(r))
	if err != nil {
		h.Log.Error("failed to claim complaint", zap.Int("id", id), zap.Error(err))
		h.flash(w, r, "Не удалось принять жалобу в работу")
	} else if !won {
		h.flash(w, r, "Жалоба уже принята в работу другим сотрудником")
	}

	http.Redirect(w, r, "/prosecutor", http.StatusSeeOther)
}

func (h *Handler) ProsecutorAddDraft(w http.ResponseWriter, r *http.Request) {
	title := formValue(r, "title", "")
	if title == "" {
		h.flash(w, r, "Укажите название документа")
		http.Redirect(w, r, "/prosecutor", http.StatusSeeOther)
		return
	}

	err := h.DB.CreateDraft(
		h.claimerName(r),
		title,
		formValue(r, "description", ""),
		formValue(r, "url", "#"),
	)
	if err != nil {
		h.Log.Error("failed to save draft", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить черновик")
	}

	http.Redirect(w, r, "/prosecutor", http.StatusSeeOther)
}
