package db

import (
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/models"
)

func (db *Database) GetComplaints(limit int) ([]models.Complaint, error) {
	var items []models.Complaint
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM complaints ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) GetComplaintByID(id int) (*models.Complaint, error) {
	var c models.Complaint
	err := db.Conn.Get(&c, db.Conn.Rebind("SELECT * FROM complaints WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *Database) CreateComplaint(c *models.Complaint) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"INSERT INTO complaints (reporter_name, nick_ds, violator_nick, details, image) VALUES (?, ?, ?, ?, ?)"),
		c.ReporterName, c.NickDS, c.ViolatorNick, c.Details, c.Image)
	return err
}

// ClaimComplaint assigns the complaint to claimer with first-writer-wins
// semantics: the update is conditioned on claimed_by still being unset, so of
// two concurrent claims exactly one lands.
func (db *Database) ClaimComplaint(id int, claimer string) (bool, error) {
	res, err := db.Conn.Exec(db.Conn.Rebind(
		"UPDATE complaints SET claimed_by = ?, claimed_at = CURRENT_TIMESTAMP WHERE id = ? AND claimed_by IS NULL"),
		claimer, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 1 {
		db.log.Info("complaint claimed", zap.Int("complaint_id", id), zap.String("claimed_by", claimer))
	}
	return n == 1, nil
}

func (db *Database) GetDrafts(limit int) ([]models.DocumentDraft, error) {
	var items []models.DocumentDraft
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM document_drafts ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) CreateDraft(createdBy, title, description, url string) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"INSERT INTO document_drafts (created_by, title, description, url) VALUES (?, ?, ?, ?)"),
		createdBy, title, description, url)
	return err
}

func (db *Database) GetHotlineAppeals(limit int) ([]models.HotlineAppeal, error) {
	var items []models.HotlineAppeal
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM hotline_appeals ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) CreateHotlineAppeal(a *models.HotlineAppeal) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"INSERT INTO hotline_appeals (fio, organization, subject, message) VALUES (?, ?, ?, ?)"),
		a.FIO, a.Organization, a.Subject, a.Message)
	return err
}
