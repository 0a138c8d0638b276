package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/db"
	"github.com/denis333rus/procuratyra/internal/models"
)

type jobForm struct {
	NickDS   string `validate:"required"`
	CharName string `validate:"required"`
	Login    string `validate:"required,min=3"`
	Password string `validate:"required,min=8"`
}

// JobsPage and JobsSubmit serve the public job-application form.
func (h *Handler) JobsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "jobs.html", map[string]interface{}{"Flashes": h.flashes(w, r)})
}

func (h *Handler) JobsSubmit(w http.ResponseWriter, r *http.Request) {
	form := jobForm{
		NickDS:   formValue(r, "nick_ds", ""),
		CharName: formValue(r, "char_name", ""),
		Login:    formValue(r, "login", ""),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.flash(w, r, "Заполните обязательные поля анкеты")
		http.Redirect(w, r, "/jobs", http.StatusSeeOther)
		return
	}

	app := &models.JobApplication{
		NickDS:           form.NickDS,
		NickRoblox:       formValue(r, "nick_roblox", ""),
		CharName:         form.CharName,
		RealAge:          formValue(r, "real_age", ""),
		CharBirth:        formValue(r, "char_birth", ""),
		DateNow:          formValue(r, "date_now", ""),
		CharAge:          formValue(r, "char_age", ""),
		CharNationality:  formValue(r, "char_nationality", ""),
		CharJob:          formValue(r, "char_job", ""),
		CharEducation:    formValue(r, "char_education", ""),
		About:            formValue(r, "about", ""),
		WhatIsProsecutor: formValue(r, "what_is_prosecutor", ""),
		LiteracyTest:     formValue(r, "literacy_test", ""),
		HasConvictions:   formValue(r, "has_convictions", ""),
		HasExperience:    formValue(r, "has_experience", ""),
		TermUPK:          formValue(r, "term_upk", ""),
		TermUK:           formValue(r, "term_uk", ""),
		TermKOAP:         formValue(r, "term_koap", ""),
		TermTK:           formValue(r, "term_tk", ""),
		Login:            form.Login,
		Password:         form.Password,
	}

	if err := h.DB.CreateJobApplication(app); err != nil {
		h.Log.Error("failed to save job application", zap.Error(err))
		h.flash(w, r, "Не удалось сохранить заявку, попробуйте позже")
		http.Redirect(w, r, "/jobs", http.StatusSeeOther)
		return
	}

	if err := h.DB.NotifyRoles("Новая заявка на трудоустройство",
		"Кандидат: "+app.CharName, db.NotificationTypeApplication, models.RoleAdmin); err != nil {
		h.Log.Error("failed to notify about application", zap.Error(err))
	}

	h.render(w, "submitted.html", map[string]interface{}{
		"Title":   "Заявка отправлена",
		"Message": "Спасибо! Ваша заявка принята.",
	})
}

type complaintForm struct {
	ReporterName string `validate:"required"`
	NickDS       string `validate:"required"`
	ViolatorNick string `validate:"required"`
	Details      string `validate:"required"`
}

// ReceptionPage and ReceptionSubmit serve the citizen complaint intake
// ("интернет-приёмная"), with an optional image attachment.
func (h *Handler) ReceptionPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "internet-reception.html", map[string]interface{}{"Flashes": h.flashes(w, r)})
}

func (h *Handler) ReceptionSubmit(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(h.Uploader.MaxSize)

	form := complaintForm{
		ReporterName: formValue(r, "reporter_name", ""),
		NickDS:       formValue(r, "nick_ds", ""),
		ViolatorNick: formValue(r, "violator_nick", ""),
		Details:      formValue(r, "details", ""),
	}
	if err := h.validate.Struct(form); err != nil {
		h.flash(w, r, "Заполните обязательные поля обращения")
		http.Redirect(w, r, "/internet-reception", http.StatusSeeOther)
		return
	}

	// absence of a file or a rejected extension leaves the field empty
	imagePath := ""
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			saved, err := h.Uploader.Save(files[0], "complaints")
			if err != nil {
				h.Log.Warn("complaint attachment rejected", zap.Error(err))
			} else {
				imagePath = saved
			}
		}
	}

	complaint := &models.Complaint{
		ReporterName: form.ReporterName,
		NickDS:       form.NickDS,
		ViolatorNick: form.ViolatorNick,
		Details:      form.Details,
		Image:        imagePath,
	}
	if err := h.DB.CreateComplaint(complaint); err != nil {
		h.Log.Error("failed to save complaint", zap.Error(err))
		h.flash(w, r, "Не удалось отправить обращение, попробуйте позже")
		http.Redirect(w, r, "/internet-reception", http.StatusSeeOther)
		return
	}

	// a complaint notifies both back-office roles, one row each
	if err := h.DB.NotifyRoles("Новая жалоба",
		"Заявитель: "+complaint.ReporterName, db.NotificationTypeComplaint,
		models.RoleAdmin, models.RoleProsecutor); err != nil {
		h.Log.Error("failed to notify about complaint", zap.Error(err))
	}

	h.render(w, "submitted.html", map[string]interface{}{
		"Title":   "Обращение отправлено",
		"Message": "Спасибо! Ваше обращение зарегистрировано.",
	})
}

type hotlineForm struct {
	FIO     string `validate:"required"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

func (h *Handler) HotlinePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "hotline.html", map[string]interface{}{"Flashes": h.flashes(w, r)})
}

func (h *Handler) HotlineSubmit(w http.ResponseWriter, r *http.Request) {
	form := hotlineForm{
		FIO:     formValue(r, "fio", ""),
		Subject: formValue(r, "subject", ""),
		Message: formValue(r, "message", ""),
	}
	if err := h.validate.Struct(form); err != nil {
		h.flash(w, r, "Заполните обязательные поля")
		http.Redirect(w, r, "/hotline", http.StatusSeeOther)
		return
	}

	appeal := &models.HotlineAppeal{
		FIO:          form.FIO,
		Organization: formValue(r, "organization", ""),
		Subject:      form.Subject,
		Message:      form.Message,
	}
	if err := h.DB.CreateHotlineAppeal(appeal); err != nil {
		h.Log.Error("failed to save hotline appeal", zap.Error(err))
		h.flash(w, r, "Не удалось отправить обращение, попробуйте позже")
		http.Redirect(w, r, "/hotline", http.StatusSeeOther)
		return
	}

	if err := h.DB.NotifyRoles("Обращение на горячую линию",
		appeal.Subject, db.NotificationTypeHotline, models.RoleAdmin); err != nil {
		h.Log.Error("failed to notify about appeal", zap.Error(err))
	}

	h.render(w, "submitted.html", map[string]interface{}{
		"Title":   "Обращение отправлено",
		"Message": "Спасибо! Ваше обращение принято.",
	})
}
