package db

import "github.com/denis333rus/procuratyra/internal/models"

func (db *Database) CountSliderNews() (int, error) {
	var n int
	err := db.Conn.Get(&n, "SELECT COUNT(*) FROM slider_news")
	return n, err
}

// GetSliderNewsAt returns the slider item at the given 0-based offset,
// newest first.
func (db *Database) GetSliderNewsAt(offset int) (*models.SliderItem, error) {
	var item models.SliderItem
	err := db.Conn.Get(&item,
		db.Conn.Rebind("SELECT * FROM slider_news ORDER BY id DESC LIMIT 1 OFFSET ?"),
		offset,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (db *Database) GetSliderNews(limit int) ([]models.SliderItem, error) {
	var items []models.SliderItem
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM slider_news ORDER BY id DESC LIMIT ?"),
		limit,
	)
	return items, err
}

func (db *Database) AddSliderNews(date, title, description, image string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO slider_news (date, title, description, image) VALUES (?, ?, ?, ?)"),
		date, title, description, image,
	)
	return err
}

func (db *Database) CountFeedNews() (int, error) {
	var n int
	err := db.Conn.Get(&n, "SELECT COUNT(*) FROM feed_news")
	return n, err
}

// GetFeedNewsPage returns one page of feed rows in the authoritative
// temporal order: insertion descending.
func (db *Database) GetFeedNewsPage(limit, offset int) ([]models.FeedItem, error) {
	var items []models.FeedItem
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM feed_news ORDER BY id DESC LIMIT ? OFFSET ?"),
		limit, offset,
	)
	return items, err
}

func (db *Database) GetFeedNews(limit int) ([]models.FeedItem, error) {
	return db.GetFeedNewsPage(limit, 0)
}

// SearchFeedNews fetches rows whose title or description contains the query
// as a substring, newest first, capped at limit. Search bypasses paging.
func (db *Database) SearchFeedNews(query string, limit int) ([]models.FeedItem, error) {
	var items []models.FeedItem
	pattern := "%" + query + "%"
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM feed_news WHERE title LIKE ? OR description LIKE ? ORDER BY id DESC LIMIT ?"),
		pattern, pattern, limit,
	)
	return items, err
}

func (db *Database) AddFeedNews(date, tm, title, description, url string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO feed_news (date, time, title, description, url) VALUES (?, ?, ?, ?, ?)"),
		date, tm, title, description, url,
	)
	return err
}
