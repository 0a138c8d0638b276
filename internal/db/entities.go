package db

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/denis333rus/procuratyra/internal/models"
)

// ErrNotFound is returned by single-row lookups with no match.
var ErrNotFound = errors.New("запись не найдена")

func (db *Database) GetEmployees(limit int) ([]models.Employee, error) {
	var items []models.Employee
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM employees ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) GetEmployeeByID(id int) (*models.Employee, error) {
	var e models.Employee
	err := db.Conn.Get(&e, db.Conn.Rebind("SELECT * FROM employees WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (db *Database) AddEmployee(name, position, contact string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO employees (name, position, contact) VALUES (?, ?, ?)"),
		name, position, contact)
	return err
}

func (db *Database) UpdateEmployee(id int, name, position, contact string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("UPDATE employees SET name = ?, position = ?, contact = ? WHERE id = ?"),
		name, position, contact, id)
	return err
}

func (db *Database) DeleteEmployee(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind("DELETE FROM employees WHERE id = ?"), id)
	return err
}

func (db *Database) GetDocuments(limit int) ([]models.Document, error) {
	var items []models.Document
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM documents ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) AddDocument(date, title, description, url string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO documents (date, title, description, url) VALUES (?, ?, ?, ?)"),
		date, title, description, url)
	return err
}

func (db *Database) GetLeaders(limit int) ([]models.Leader, error) {
	var items []models.Leader
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM leaders ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) GetLeaderByID(id int) (*models.Leader, error) {
	var l models.Leader
	err := db.Conn.Get(&l, db.Conn.Rebind("SELECT * FROM leaders WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (db *Database) AddLeader(date, name, message, photo string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO leaders (date, name, message, photo) VALUES (?, ?, ?, ?)"),
		date, name, message, photo)
	return err
}

func (db *Database) UpdateLeader(id int, date, name, message, photo string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("UPDATE leaders SET date = ?, name = ?, message = ?, photo = ? WHERE id = ?"),
		date, name, message, photo, id)
	return err
}

func (db *Database) DeleteLeader(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind("DELETE FROM leaders WHERE id = ?"), id)
	return err
}

func (db *Database) GetContacts() ([]models.Contact, error) {
	var items []models.Contact
	err := db.Conn.Select(&items, "SELECT * FROM contacts ORDER BY id")
	return items, err
}

func (db *Database) AddContact(label, value string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO contacts (label, value) VALUES (?, ?)"), label, value)
	return err
}

func (db *Database) DeleteContact(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind("DELETE FROM contacts WHERE id = ?"), id)
	return err
}

func (db *Database) GetOrgUnits() ([]models.OrgUnit, error) {
	var items []models.OrgUnit
	err := db.Conn.Select(&items, "SELECT * FROM org_units ORDER BY id")
	return items, err
}

func (db *Database) GetOrgUnitByID(id int) (*models.OrgUnit, error) {
	var u models.OrgUnit
	err := db.Conn.Get(&u, db.Conn.Rebind("SELECT * FROM org_units WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Database) AddOrgUnit(name, description, url string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO org_units (name, description, url) VALUES (?, ?, ?)"),
		name, description, url)
	return err
}

func (db *Database) UpdateOrgUnit(id int, name, description, url string) error {
	_, err := db.Conn.Exec(
		db.Conn.Rebind("UPDATE org_units SET name = ?, description = ?, url = ? WHERE id = ?"),
		name, description, url, id)
	return err
}

func (db *Database) DeleteOrgUnit(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind("DELETE FROM org_units WHERE id = ?"), id)
	return err
}

// GetSetting returns the stored value or "" when the key is absent.
func (db *Database) GetSetting(key string) (string, error) {
	var value string
	err := db.Conn.Get(&value, db.Conn.Rebind("SELECT value FROM app_settings WHERE key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (db *Database) SetSetting(key, value string) error {
	res, err := db.Conn.Exec(
		db.Conn.Rebind("UPDATE app_settings SET value = ? WHERE key = ?"), value, key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = db.Conn.Exec(
		db.Conn.Rebind("INSERT INTO app_settings (key, value) VALUES (?, ?)"), key, value)
	return err
}

// PoliticiansRemoved reads the landing-page counter; a missing or garbled
// value counts as zero.
func (db *Database) PoliticiansRemoved() int {
	v, err := db.GetSetting("politicians_removed")
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}
