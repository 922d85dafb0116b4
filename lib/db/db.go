// Package db persists articles in an SQLite database and runs
// smart-folder queries against them through the sqlfilter compiler.
package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"git.sr.ht/~kanr/smartfolder/lib/log"
	"git.sr.ht/~kanr/smartfolder/lib/sqlfilter"
	"git.sr.ht/~kanr/smartfolder/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		folder TEXT NOT NULL,
		sender TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		date INTEGER NOT NULL,
		read_flag INTEGER NOT NULL DEFAULT 0,
		marked_flag INTEGER NOT NULL DEFAULT 0,
		hasenclosure_flag INTEGER NOT NULL DEFAULT 0,
		deleted_flag INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS articles_folder ON articles (folder)`,
	`CREATE INDEX IF NOT EXISTS articles_date ON articles (date)`,
}

// Article is one stored item. Folder is a slash-separated path.
type Article struct {
	ID           int64
	Folder       string
	Author       string
	Subject      string
	Text         string
	Date         time.Time
	Read         bool
	Flagged      bool
	HasEnclosure bool
	Deleted      bool
}

type DB struct {
	conn *sql.DB
	log  log.Logger
}

// Open opens or creates the article database at path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite",
		path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)")
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return nil, errors.Wrap(err, "create schema")
		}
	}
	return &DB{conn: conn, log: log.NewLogger("db", 3)}, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

// AddArticle inserts an article and returns its id.
func (d *DB) AddArticle(ctx context.Context, a *Article) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `
		INSERT INTO articles (folder, sender, subject, text, date,
			read_flag, marked_flag, hasenclosure_flag, deleted_flag)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Folder, a.Author, a.Subject, a.Text, a.Date.Unix(),
		boolFlag(a.Read), boolFlag(a.Flagged),
		boolFlag(a.HasEnclosure), boolFlag(a.Deleted))
	if err != nil {
		return 0, errors.Wrap(err, "insert article")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "article id")
	}
	return id, nil
}

// QuerySmartFolder returns the articles matching a smart-folder
// criteria tree, ordered by date then id. Relative date criteria are
// anchored at now.
func (d *DB) QuerySmartFolder(ctx context.Context, tree *models.CriteriaTree,
	now time.Time,
) ([]Article, error) {
	where, args := sqlfilter.New(now, d.log).Where(tree)
	d.log.Tracef("smart folder query: %s %v", where, args)

	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, folder, sender, subject, text, date,
			read_flag, marked_flag, hasenclosure_flag, deleted_flag
		FROM articles WHERE `+where+` ORDER BY date, id`, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query articles")
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		var date int64
		var read, flagged, enclosure, deleted int
		err := rows.Scan(&a.ID, &a.Folder, &a.Author, &a.Subject,
			&a.Text, &date, &read, &flagged, &enclosure, &deleted)
		if err != nil {
			return nil, errors.Wrap(err, "scan article")
		}
		a.Date = time.Unix(date, 0)
		a.Read = read != 0
		a.Flagged = flagged != 0
		a.HasEnclosure = enclosure != 0
		a.Deleted = deleted != 0
		articles = append(articles, a)
	}
	return articles, errors.Wrap(rows.Err(), "iterate articles")
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
