package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/models"
)

var (
	// ErrUsernameTaken means the desired login already belongs to an account.
	ErrUsernameTaken = errors.New("логин уже занят")
	// ErrAlreadyDecided means the application left the pending state earlier.
	ErrAlreadyDecided = errors.New("заявка уже рассмотрена")
)

func (db *Database) GetJobApplications(limit int) ([]models.JobApplication, error) {
	var items []models.JobApplication
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM job_applications ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) GetJobApplicationByID(id int) (*models.JobApplication, error) {
	var app models.JobApplication
	err := db.Conn.Get(&app, db.Conn.Rebind("SELECT * FROM job_applications WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (db *Database) CreateJobApplication(app *models.JobApplication) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(`INSERT INTO job_applications
		(nick_ds, nick_roblox, char_name, real_age, char_birth, date_now, char_age,
		 char_nationality, char_job, char_education, about, what_is_prosecutor,
		 literacy_test, has_convictions, has_experience, term_upk, term_uk,
		 term_koap, term_tk, login, password)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		app.NickDS, app.NickRoblox, app.CharName, app.RealAge, app.CharBirth,
		app.DateNow, app.CharAge, app.CharNationality, app.CharJob,
		app.CharEducation, app.About, app.WhatIsProsecutor, app.LiteracyTest,
		app.HasConvictions, app.HasExperience, app.TermUPK, app.TermUK,
		app.TermKOAP, app.TermTK, app.Login, app.Password,
	)
	return err
}

// ApproveApplication provisions an account and an employee row and marks the
// application approved, all in one transaction. The status guard makes a
// repeated approve a no-op conflict instead of a duplicate account; the real
// uniqueness guard is the UNIQUE constraint on users.username — the pre-check
// only exists for a friendlier error.
func (db *Database) ApproveApplication(id int, passwordHash string) error {
	app, err := db.GetJobApplicationByID(id)
	if err != nil {
		return err
	}
	if app.Status != models.ApplicationPending {
		return ErrAlreadyDecided
	}

	var taken int
	if err := db.Conn.Get(&taken,
		db.Conn.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), app.Login); err != nil {
		return err
	}
	if taken > 0 {
		return ErrUsernameTaken
	}

	position := app.CharJob
	if position == "" {
		position = "Сотрудник прокуратуры"
	}

	tx, err := db.Conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(db.Conn.Rebind(
		"INSERT INTO users (username, password_hash, full_name, role, application_id) VALUES (?, ?, ?, ?, ?)"),
		app.Login, passwordHash, app.CharName, models.RoleEmployee, app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to provision account: %w", err)
	}

	_, err = tx.Exec(db.Conn.Rebind(
		"INSERT INTO employees (name, position, contact) VALUES (?, ?, ?)"),
		app.CharName, position, app.NickDS)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	_, err = tx.Exec(db.Conn.Rebind(
		"UPDATE job_applications SET status = ? WHERE id = ? AND status = ?"),
		models.ApplicationApproved, app.ID, models.ApplicationPending)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.log.Info("job application approved",
		zap.Int("application_id", app.ID), zap.String("username", app.Login))
	return nil
}

// RejectApplication is the terminal no-side-effect branch of the workflow.
func (db *Database) RejectApplication(id int) error {
	app, err := db.GetJobApplicationByID(id)
	if err != nil {
		return err
	}
	if app.Status != models.ApplicationPending {
		return ErrAlreadyDecided
	}

	_, err = db.Conn.Exec(db.Conn.Rebind(
		"UPDATE job_applications SET status = ? WHERE id = ? AND status = ?"),
		models.ApplicationRejected, id, models.ApplicationPending)
	return err
}

// isUniqueViolation matches both backends: pgx reports SQLSTATE 23505,
// modernc sqlite reports "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "UNIQUE constraint failed")
}

func (db *Database) GetUsers(limit int) ([]models.User, error) {
	var items []models.User
	err := db.Conn.Select(&items,
		db.Conn.Rebind("SELECT * FROM users ORDER BY id DESC LIMIT ?"), limit)
	return items, err
}

func (db *Database) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := db.Conn.Get(&u, db.Conn.Rebind("SELECT * FROM users WHERE username = ?"), username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Database) GetUserByID(id int) (*models.User, error) {
	var u models.User
	err := db.Conn.Get(&u, db.Conn.Rebind("SELECT * FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Database) CreateUser(username, passwordHash, fullName, role string) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"INSERT INTO users (username, password_hash, full_name, role) VALUES (?, ?, ?, ?)"),
		username, passwordHash, fullName, role)
	if isUniqueViolation(err) {
		return ErrUsernameTaken
	}
	return err
}

func (db *Database) UpdateUser(id int, fullName, role string) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"UPDATE users SET full_name = ?, role = ? WHERE id = ?"), fullName, role, id)
	return err
}

func (db *Database) DeleteUser(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind("DELETE FROM users WHERE id = ?"), id)
	return err
}
