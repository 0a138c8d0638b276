package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultLogo = "/logo/logo.png"

func (h *Handler) AdminHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/important", http.StatusSeeOther)
}

func urlID(r *http.Request) int {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	return id
}

// ---- списки ----

func (h *Handler) AdminImportant(w http.ResponseWriter, r *http.Request) {
	slider, err := h.DB.GetSliderNews(50)
	if err != nil {
		slider = nil
	}
	h.render(w, "admin_important.html", map[string]interface{}{
		"Slider": slider, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminOrdinary(w http.ResponseWriter, r *http.Request) {
	feedRows, err := h.DB.GetFeedNews(50)
	if err != nil {
		feedRows = nil
	}
	h.render(w, "admin_ordinary.html", map[string]interface{}{
		"Feed": feedRows, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.DB.GetEmployees(200)
	if err != nil {
		employees = nil
	}
	h.render(w, "admin_employees.html", map[string]interface{}{
		"Employees": employees, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminDocs(w http.ResponseWriter, r *http.Request) {
	documents, err := h.DB.GetDocuments(200)
	if err != nil {
		documents = nil
	}
	h.render(w, "admin_docs.html", map[string]interface{}{
		"Documents": documents, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminLeader(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.DB.GetLeaders(50)
	if err != nil {
		leaders = nil
	}
	h.render(w, "admin_leader.html", map[string]interface{}{
		"Leaders": leaders, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.DB.GetContacts()
	if err != nil {
		contacts = nil
	}
	h.render(w, "admin_contacts.html", map[string]interface{}{
		"Contacts": contacts, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.DB.GetOrgUnits()
	if err != nil {
		units = nil
	}
	h.render(w, "admin_units.html", map[string]interface{}{
		"Units": units, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.DB.GetUsers(200)
	if err != nil {
		users = nil
	}
	h.render(w, "admin_users.html", map[string]interface{}{
		"Users": users, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.DB.GetComplaints(200)
	if err != nil {
		complaints = nil
	}
	h.render(w, "admin_complaints.html", map[string]interface{}{
		"Complaints": complaints, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminAppeals(w http.ResponseWriter, r *http.Request) {
	appeals, err := h.DB.GetHotlineAppeals(200)
	if err != nil {
		appeals = nil
	}
	h.render(w, "admin_appeals.html", map[string]interface{}{
		"Appeals": appeals, "Flashes": h.flashes(w, r),
	})
}

func (h *Handler) AdminSettings(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin_settings.html", map[string]interface{}{
		"PoliticiansRemoved": h.DB.PoliticiansRemoved(),
		"Flashes":            h.flashes(w, r),
	})
}

func (h *Handler) AdminSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	value := formValue(r, "politicians_removed", "0")
	if _, err := strconv.Atoi(value); err != nil {
		h.flash(w, r, "Счётчик должен быть числом")
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}
	if err := h.DB.SetSetting("politicians_removed", value); err != nil {
		h.Log.Error("failed to update counter", zap.Error(err))
		h.flash(w, r, "Не удалось обновить счётчик")
	}
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// ---- новости ----

func (h *Handler) AdminAddSliderNews(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(h.Uploader.MaxSize)

	image := formValue(r, "image", defaultLogo)
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["image_file"]; len(files) > 0 {
			if saved, err := h.Uploader.Save(files[0], "news"); err == nil {
				image = saved
			} else {
				h.Log.Warn("slider image rejected", zap.Error(err))
			}
		}
	}

	err := h.DB.AddSliderNews(
		formValue(r, "date", ""),
		formValue(r, "title", ""),
		formValue(r, "description", ""),
		image,
	)
	if err != nil {
		h.Log.Error("failed to add slider news", zap.Error(err))
		h.flash(w, r, "Не удалось добавить новость")
	}
	http.Redirect(w, r, "/admin/important", http.StatusSeeOther)
}

func (h *Handler) AdminAddFeedNews(w http.ResponseWriter, r *http.Request) {
	err := h.DB.AddFeedNews(
		formValue(r, "date", ""),
		formValue(r, "time", ""),
		formValue(r, "title", ""),
		formValue(r, "description", ""),
		formValue(r, "url", "#"),
	)
	if err != nil {
		h.Log.Error("failed to add feed news", zap.Error(err))
		h.flash(w, r, "Не удалось добавить новость")
	}
	http.Redirect(w, r, "/admin/ordinary", http.StatusSeeOther)
}

// ---- сотрудники ----

func (h *Handler) AdminAddEmployee(w http.ResponseWriter, r *http.Request) {
	err := h.DB.AddEmployee(
		formValue(r, "name", ""),
		formValue(r, "position", ""),
		formValue(r, "contact", ""),
	)
	if err != nil {
		h.Log.Error("failed to add employee", zap.Error(err))
		h.flash(w, r, "Не удалось добавить сотрудника")
	}
	http.Redirect(w, r, "/admin/employees", http.StatusSeeOther)
}

func (h *Handler) AdminEditEmployee(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)
	if _, err := h.DB.GetEmployeeByID(id); err != nil {
		h.flash(w, r, "Сотрудник не найден")
		http.Redirect(w, r, "/admin/employees", http.StatusSeeOther)
		return
	}

	err := h.DB.UpdateEmployee(id,
		formValue(r, "name", ""),
		formValue(r, "position", ""),
		formValue(r, "contact", ""),
	)
	if err != nil {
		h.Log.Error("failed to update employee", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить изменения")
	}
	http.Redirect(w, r, "/admin/employees", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteEmployee(urlID(r)); err != nil {
		h.Log.Error("failed to delete employee", zap.Error(err))
		h.flash(w, r, "Не удалось удалить сотрудника")
	}
	http.Redirect(w, r, "/admin/employees", http.StatusSeeOther)
}

// ---- документы ----

func (h *Handler) AdminAddDocument(w http.ResponseWriter, r *http.Request) {
	err := h.DB.AddDocument(
		formValue(r, "date", ""),
		formValue(r, "title", ""),
		formValue(r, "description", ""),
		formValue(r, "url", "#"),
	)
	if err != nil {
		h.Log.Error("failed to add document", zap.Error(err))
		h.flash(w, r, "Не удалось добавить документ")
	}
	http.Redirect(w, r, "/admin/docs", http.StatusSeeOther)
}

// ---- руководство ----

func (h *Handler) AdminAddLeader(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(h.Uploader.MaxSize)

	photo := defaultLogo
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["photo"]; len(files) > 0 {
			if saved, err := h.Uploader.Save(files[0], "leaders"); err == nil {
				photo = saved
			} else {
				h.Log.Warn("leader photo rejected", zap.Error(err))
			}
		}
	}

	err := h.DB.AddLeader(
		formValue(r, "date", ""),
		formValue(r, "name", ""),
		formValue(r, "message", ""),
		photo,
	)
	if err != nil {
		h.Log.Error("failed to add leader", zap.Error(err))
		h.flash(w, r, "Не удалось добавить запись")
	}
	http.Redirect(w, r, "/admin/leader", http.StatusSeeOther)
}

func (h *Handler) AdminEditLeader(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)
	leader, err := h.DB.GetLeaderByID(id)
	if err != nil {
		h.flash(w, r, "Запись не найдена")
		http.Redirect(w, r, "/admin/leader", http.StatusSeeOther)
		return
	}

	err = h.DB.UpdateLeader(id,
		formValue(r, "date", leader.Date),
		formValue(r, "name", leader.Name),
		formValue(r, "message", leader.Message),
		leader.Photo,
	)
	if err != nil {
		h.Log.Error("failed to update leader", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить изменения")
	}
	http.Redirect(w, r, "/admin/leader", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteLeader(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteLeader(urlID(r)); err != nil {
		h.Log.Error("failed to delete leader", zap.Error(err))
		h.flash(w, r, "Не удалось удалить запись")
	}
	http.Redirect(w, r, "/admin/leader", http.StatusSeeOther)
}

// ---- контакты ----

func (h *Handler) AdminAddContact(w http.ResponseWriter, r *http.Request) {
	err := h.DB.AddContact(formValue(r, "label", ""), formValue(r, "value", ""))
	if err != nil {
		h.Log.Error("failed to add contact", zap.Error(err))
		h.flash(w, r, "Не удалось добавить контакт")
	}
	http.Redirect(w, r, "/admin/contacts", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteContact(urlID(r)); err != nil {
		h.Log.Error("failed to delete contact", zap.Error(err))
		h.flash(w, r, "Не удалось удалить контакт")
	}
	http.Redirect(w, r, "/admin/contacts", http.StatusSeeOther)
}

// ---- подразделения ----

func (h *Handler) AdminAddUnit(w http.ResponseWriter, r *http.Request) {
	err := h.DB.AddOrgUnit(
		formValue(r, "name", ""),
		formValue(r, "description", ""),
		formValue(r, "url", "#"),
	)
	if err != nil {
		h.Log.Error("failed to add org unit", zap.Error(err))
		h.flash(w, r, "Не удалось добавить подразделение")
	}
	http.Redirect(w, r, "/admin/units", http.StatusSeeOther)
}

func (h *Handler) AdminEditUnit(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)
	unit, err := h.DB.GetOrgUnitByID(id)
	if err != nil {
		h.flash(w, r, "Подразделение не найдено")
		http.Redirect(w, r, "/admin/units", http.StatusSeeOther)
		return
	}

	err = h.DB.UpdateOrgUnit(id,
		formValue(r, "name", unit.Name),
		formValue(r, "description", unit.Description),
		formValue(r, "url", unit.URL),
	)
	if err != nil {
		h.Log.Error("failed to update org unit", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить изменения")
	}
	http.Redirect(w, r, "/admin/units", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteUnit(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteOrgUnit(urlID(r)); err != nil {
		h.Log.Error("failed to delete org unit", zap.Error(err))
		h.flash(w, r, "Не удалось удалить подразделение")
	}
	http.Redirect(w, r, "/admin/units", http.StatusSeeOther)
}

// ---- аккаунты ----

func (h *Handler) AdminEditUser(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)
	user, err := h.DB.GetUserByID(id)
	if err != nil {
		h.flash(w, r, "Аккаунт не найден")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	err = h.DB.UpdateUser(id,
		formValue(r, "full_name", user.FullName),
		formValue(r, "role", user.Role),
	)
	if err != nil {
		h.Log.Error("failed to update user", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить изменения")
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteUser(urlID(r)); err != nil {
		h.Log.Error("failed to delete user", zap.Error(err))
		h.flash(w, r, "Не удалось удалить аккаунт")
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// ---- заявки ----

func (h *Handler) AdminJobs(w http.ResponseWriter, r *http.Request) {
	apps, err := h.DB.GetJobApplications(200)
	if err != nil {
		apps = nil
	}
	h.render(w, "admin_jobs.html", map[string]interface{}{
		"Applications": apps, "Flashes": h.flashes(w, r),
	})
}
