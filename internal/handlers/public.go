package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/denis333rus/procuratyra/internal/feed"
	"github.com/denis333rus/procuratyra/internal/models"
)

// Home renders the landing page: the one-at-a-time slider, the paged or
// searched feed grouped by date, and the politicians-removed counter.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sliderPage, _ := strconv.Atoi(r.URL.Query().Get("page"))
	feedPage, _ := strconv.Atoi(r.URL.Query().Get("feed_page"))
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	tab := r.URL.Query().Get("tab")

	sliderTotal, err := h.DB.CountSliderNews()
	if err != nil {
		http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	// one slider item per page, so pages = total
	sliderEffective, sliderPages, sliderOffset := feed.Paginate(sliderTotal, sliderPage, 1)

	var current *models.SliderItem
	if sliderTotal > 0 {
		current, err = h.DB.GetSliderNewsAt(sliderOffset)
		if err != nil {
			current = nil
		}
	}

	var (
		rows      []models.FeedItem
		effective = 1
		pages     = 1
	)
	if query != "" {
		// search bypasses paging entirely
		rows, err = h.DB.SearchFeedNews(query, feed.SearchCap)
	} else {
		total, cerr := h.DB.CountFeedNews()
		if cerr != nil {
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}
		var offset int
		effective, pages, offset = feed.Paginate(total, feedPage, feed.PerPage)
		rows, err = h.DB.GetFeedNewsPage(feed.PerPage, offset)
	}
	if err != nil {
		rows = nil
	}

	data := map[string]interface{}{
		"News":               current,
		"Page":               sliderEffective,
		"TotalPages":         sliderPages,
		"FeedGroups":         feed.GroupByDate(rows),
		"FeedPage":           effective,
		"FeedPages":          pages,
		"Query":              query,
		"Tab":                tab,
		"PoliticiansRemoved": h.DB.PoliticiansRemoved(),
		"LoggedIn":           h.session(r).Values["user_id"] != nil || h.isAdmin(r),
	}

	h.render(w, "base.html", data)
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.DB.GetLeaders(50)
	if err != nil {
		leaders = nil
	}

	// поле date хранит должность; по ключевым словам отделяем заместителей
	var head []models.Leader
	var deputies []models.Leader
	for _, l := range leaders {
		position := strings.ToLower(l.Date)
		if strings.Contains(position, "заместитель") || strings.Contains(position, "зам.") {
			deputies = append(deputies, l)
		} else {
			head = append(head, l)
		}
	}

	h.render(w, "about.html", map[string]interface{}{
		"Head":     head,
		"Deputies": deputies,
	})
}

func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	h.render(w, "activity.html", map[string]interface{}{})
}

func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	documents, err := h.DB.GetDocuments(200)
	if err != nil {
		documents = nil
	}
	h.render(w, "documents.html", map[string]interface{}{"Documents": documents})
}

func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.DB.GetContacts()
	if err != nil {
		contacts = nil
	}
	h.render(w, "contacts.html", map[string]interface{}{"Contacts": contacts})
}

func (h *Handler) Structure(w http.ResponseWriter, r *http.Request) {
	units, err := h.DB.GetOrgUnits()
	if err != nil {
		units = nil
	}
	h.render(w, "structure.html", map[string]interface{}{"Units": units})
}
