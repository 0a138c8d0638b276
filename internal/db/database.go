package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Database wraps the connection for both backends: sqlite in development,
// postgres in deployment. Queries are written once with ? placeholders and
// passed through Rebind.
type Database struct {
	Conn *sqlx.DB
	log  *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) (*Database, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	switch cfg.Database.Backend {
	case "postgres":
		conn, err = sqlx.Connect("pgx", cfg.Database.DSN)
	case "sqlite":
		conn, err = sqlx.Connect("sqlite", cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s database: %w", cfg.Database.Backend, err)
	}

	db := &Database{Conn: conn, log: logger}
	if err := db.initSchema(cfg.Database.Backend); err != nil {
		return nil, err
	}
	if err := db.seed(); err != nil {
		return nil, err
	}

	logger.Info("database ready", zap.String("backend", cfg.Database.Backend))
	return db, nil
}

// The DDL exists once; only the auto-increment primary key spelling differs
// between backends, substituted for the {{id}} marker.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS slider_news (
	id {{id}},
	date TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '/logo/logo.png',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS feed_news (
	id {{id}},
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '#',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS job_applications (
	id {{id}},
	nick_ds TEXT NOT NULL DEFAULT '',
	nick_roblox TEXT NOT NULL DEFAULT '',
	char_name TEXT NOT NULL DEFAULT '',
	real_age TEXT NOT NULL DEFAULT '',
	char_birth TEXT NOT NULL DEFAULT '',
	date_now TEXT NOT NULL DEFAULT '',
	char_age TEXT NOT NULL DEFAULT '',
	char_nationality TEXT NOT NULL DEFAULT '',
	char_job TEXT NOT NULL DEFAULT '',
	char_education TEXT NOT NULL DEFAULT '',
	about TEXT NOT NULL DEFAULT '',
	what_is_prosecutor TEXT NOT NULL DEFAULT '',
	literacy_test TEXT NOT NULL DEFAULT '',
	has_convictions TEXT NOT NULL DEFAULT '',
	has_experience TEXT NOT NULL DEFAULT '',
	term_upk TEXT NOT NULL DEFAULT '',
	term_uk TEXT NOT NULL DEFAULT '',
	term_koap TEXT NOT NULL DEFAULT '',
	term_tk TEXT NOT NULL DEFAULT '',
	login TEXT NOT NULL DEFAULT '',
	password TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS employees (
	id {{id}},
	name TEXT NOT NULL,
	position TEXT NOT NULL,
	contact TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS documents (
	id {{id}},
	date TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '#'
);

CREATE TABLE IF NOT EXISTS leaders (
	id {{id}},
	date TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	photo TEXT NOT NULL DEFAULT '/logo/logo.png'
);

CREATE TABLE IF NOT EXISTS contacts (
	id {{id}},
	label TEXT NOT NULL,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS complaints (
	id {{id}},
	reporter_name TEXT NOT NULL DEFAULT '',
	nick_ds TEXT NOT NULL DEFAULT '',
	violator_nick TEXT NOT NULL DEFAULT '',
	details TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	claimed_by TEXT,
	claimed_at TIMESTAMP,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS document_drafts (
	id {{id}},
	created_by TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '#',
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
	id {{id}},
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'employee',
	application_id INTEGER,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS org_units (
	id {{id}},
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '#'
);

CREATE TABLE IF NOT EXISTS app_settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS hotline_appeals (
	id {{id}},
	fio TEXT NOT NULL DEFAULT '',
	organization TEXT NOT NULL DEFAULT '',
	subject TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS notifications (
	id {{id}},
	title TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	recipient_role TEXT NOT NULL,
	recipient_id INTEGER,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	payload TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

func (db *Database) initSchema(backend string) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if backend == "postgres" {
		pk = "SERIAL PRIMARY KEY"
	}

	schema := strings.ReplaceAll(schemaTemplate, "{{id}}", pk)
	if _, err := db.Conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

// seed inserts demo news on a fresh database so the landing page is not empty.
func (db *Database) seed() error {
	var n int
	if err := db.Conn.Get(&n, "SELECT COUNT(*) FROM slider_news"); err != nil {
		return err
	}
	if n == 0 {
		rows := [][3]string{
			{"09 Октября 2025, 14:52", "Под председательством состоялось заседание коллегии, посвященное практике прокурорского надзора", "/logo/logo.png"},
			{"08 Октября 2025, 10:20", "Прокуратура разъяснила порядок обращений граждан и меры поддержки", "/logo/logo.png"},
			{"07 Октября 2025, 09:00", "Обновлены методические рекомендации по противодействию коррупции", "/logo/logo.png"},
		}
		for _, r := range rows {
			if err := db.AddSliderNews(r[0], r[1], "", r[2]); err != nil {
				return err
			}
		}
	}

	if err := db.Conn.Get(&n, "SELECT COUNT(*) FROM feed_news"); err != nil {
		return err
	}
	if n == 0 {
		rows := [][4]string{
			{"2025-10-17", "15:26", "В суд направлены уголовные дела в отношении двух наемников", "#"},
			{"2025-10-17", "11:52", "Военная прокуратура помогла матери погибшего получить страховые выплаты", "#"},
			{"2025-10-17", "09:29", "Вынесен приговор по делу о террористической деятельности", "#"},
			{"2025-10-16", "14:26", "После вмешательства прокуратуры родители получили выплаты", "#"},
			{"2025-10-16", "12:25", "Прокуратура помогла родителям получить выплаты", "#"},
			{"2025-10-16", "11:08", "Предотвращен возможный вывод имущества аэропорта", "#"},
			{"2025-10-15", "13:51", "Состоялся приговор за тяжкие преступления", "#"},
		}
		for _, r := range rows {
			if err := db.AddFeedNews(r[0], r[1], r[2], "", r[3]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (db *Database) Close() {
	db.Conn.Close()
}
