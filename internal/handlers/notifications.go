package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denis333rus/procuratyra/internal/models"
)

// JSON endpoints polled by the admin and prosecutor dashboards. An
// unauthenticated caller gets zero/empty defaults, never an error.

func (h *Handler) NotificationsUnreadCount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role, id := h.callerRole(r)
	if role == "" {
		json.NewEncoder(w).Encode(map[string]int{"count": 0})
		return
	}

	count, err := h.DB.CountUnreadNotifications(role, id)
	if err != nil {
		count = 0
	}
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}

func (h *Handler) NotificationsGetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role, id := h.callerRole(r)
	if role == "" {
		json.NewEncoder(w).Encode([]models.Notification{})
		return
	}

	items, err := h.DB.GetNotifications(role, id, 100)
	if err != nil || items == nil {
		items = []models.Notification{}
	}
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) NotificationsMarkRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role, _ := h.callerRole(r)
	if role == "" {
		json.NewEncoder(w).Encode(map[string]bool{"ok": false})
		return
	}

	if err := h.DB.MarkNotificationRead(urlID(r)); err != nil {
		json.NewEncoder(w).Encode(map[string]bool{"ok": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
