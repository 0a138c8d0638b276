package db

import "github.com/denis333rus/procuratyra/internal/models"

// Типы уведомлений.
const (
	NotificationTypeComplaint   = "complaint"
	NotificationTypeApplication = "job_application"
	NotificationTypeHotline     = "hotline"
)

// AddNotification appends one row; read state is mutated later per row.
func (db *Database) AddNotification(title, message, ntype, role string, recipientID *int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"INSERT INTO notifications (title, message, type, recipient_role, recipient_id) VALUES (?, ?, ?, ?, ?)"),
		title, message, ntype, role, recipientID)
	return err
}

// NotifyRoles fans one event out as a separate row per interested role.
func (db *Database) NotifyRoles(title, message, ntype string, roles ...string) error {
	for _, role := range roles {
		if err := db.AddNotification(title, message, ntype, role, nil); err != nil {
			return err
		}
	}
	return nil
}

// GetNotifications returns rows targeted at the role with no specific
// recipient, together with rows scoped to the caller's own id.
func (db *Database) GetNotifications(role string, recipientID int, limit int) ([]models.Notification, error) {
	var items []models.Notification
	err := db.Conn.Select(&items, db.Conn.Rebind(
		`SELECT * FROM notifications
		 WHERE recipient_role = ? AND (recipient_id IS NULL OR recipient_id = ?)
		 ORDER BY id DESC LIMIT ?`),
		role, recipientID, limit)
	return items, err
}

func (db *Database) CountUnreadNotifications(role string, recipientID int) (int, error) {
	var n int
	err := db.Conn.Get(&n, db.Conn.Rebind(
		`SELECT COUNT(*) FROM notifications
		 WHERE recipient_role = ? AND (recipient_id IS NULL OR recipient_id = ?) AND is_read = ?`),
		role, recipientID, false)
	return n, err
}

func (db *Database) MarkNotificationRead(id int) error {
	_, err := db.Conn.Exec(db.Conn.Rebind(
		"UPDATE notifications SET is_read = ? WHERE id = ?"), true, id)
	return err
}
