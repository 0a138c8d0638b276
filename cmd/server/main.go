package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/config"
	"github.com/denis333rus/procuratyra/internal/db"
	"github.com/denis333rus/procuratyra/internal/handlers"
	"github.com/denis333rus/procuratyra/internal/middleware"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.Server.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	database, err := db.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	h := handlers.New(database, store, cfg, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	r.Handle("/logo/*", http.StripPrefix("/logo/", http.FileServer(http.Dir("logo"))))

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/activity", h.Activity)
	r.Get("/documents", h.Documents)
	r.Get("/contacts", h.Contacts)
	r.Get("/structure", h.Structure)

	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)

	r.Get("/jobs", h.JobsPage)
	r.Post("/jobs", h.JobsSubmit)
	r.Get("/internet-reception", h.ReceptionPage)
	r.Post("/internet-reception", h.ReceptionSubmit)
	r.Get("/hotline", h.HotlinePage)
	r.Post("/hotline", h.HotlineSubmit)

	r.Get("/notifications/get_unread_count", h.NotificationsUnreadCount)
	r.Get("/notifications/get_all", h.NotificationsGetAll)
	r.Post("/notifications/mark_read/{id}", h.NotificationsMarkRead)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store))

		r.Get("/admin", h.AdminHome)
		r.Get("/admin/important", h.AdminImportant)
		r.Get("/admin/ordinary", h.AdminOrdinary)
		r.Get("/admin/employees", h.AdminEmployees)
		r.Get("/admin/jobs", h.AdminJobs)
		r.Get("/admin/docs", h.AdminDocs)
		r.Get("/admin/leader", h.AdminLeader)
		r.Get("/admin/contacts", h.AdminContacts)
		r.Get("/admin/units", h.AdminUnits)
		r.Get("/admin/users", h.AdminUsers)
		r.Get("/admin/complaints", h.AdminComplaints)
		r.Get("/admin/appeals", h.AdminAppeals)
		r.Get("/admin/settings", h.AdminSettings)
		r.Post("/admin/settings", h.AdminSettingsUpdate)

		r.Post("/admin/news/add", h.AdminAddSliderNews)
		r.Post("/admin/feed/add", h.AdminAddFeedNews)
		r.Post("/admin/employees/add", h.AdminAddEmployee)
		r.Post("/admin/employees/edit/{id}", h.AdminEditEmployee)
		r.Post("/admin/employees/delete/{id}", h.AdminDeleteEmployee)
		r.Post("/admin/docs/add", h.AdminAddDocument)
		r.Post("/admin/leader/add", h.AdminAddLeader)
		r.Post("/admin/leader/edit/{id}", h.AdminEditLeader)
		r.Post("/admin/leader/delete/{id}", h.AdminDeleteLeader)
		r.Post("/admin/contacts/add", h.AdminAddContact)
		r.Post("/admin/contacts/delete/{id}", h.AdminDeleteContact)
		r.Post("/admin/units/add", h.AdminAddUnit)
		r.Post("/admin/units/edit/{id}", h.AdminEditUnit)
		r.Post("/admin/units/delete/{id}", h.AdminDeleteUnit)
		r.Post("/admin/users/edit/{id}", h.AdminEditUser)
		r.Post("/admin/users/delete/{id}", h.AdminDeleteUser)

		r.Post("/admin/jobs/approve/{id}", h.AdminApproveApplication)
		r.Post("/admin/jobs/reject/{id}", h.AdminRejectApplication)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireProsecutor(store))

		r.Get("/prosecutor", h.ProsecutorPanel)
		r.Post("/prosecutor/claim/{id}", h.ProsecutorClaim)
		r.Post("/prosecutor/draft/add", h.ProsecutorAddDraft)
	})

	logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
