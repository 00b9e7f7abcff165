// Package store persists crawl results in SQLite, one row per job_id.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"go-linkedin-jobhunter/internal/crawler"
)

// PersistedJob is the durable record for one job id. Content fields are
// empty when the last run failed on that job.
type PersistedJob struct {
	JobID       string
	Title       string
	Company     string
	Description string
	Location    string
	URL         string
	ScrapedAt   time.Time
	Success     bool
	Error       string
}

type DB struct {
	pool *sql.DB
}

func Open(path string) (*DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	if err := migrate(pool); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return &DB{pool: pool}, nil
}

func migrate(pool *sql.DB) error {
	_, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  job_id TEXT NOT NULL UNIQUE CHECK (job_id <> ''),
  title TEXT,
  company TEXT,
  description TEXT,
  location TEXT,
  url TEXT,
  scraped_at TEXT NOT NULL,
  success INTEGER NOT NULL DEFAULT 1,
  error TEXT
);`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SaveBatch upserts every accepted and failed job in one transaction.
// A later run with the same job_id overwrites the earlier row; on any
// mid-batch error the whole call rolls back and nothing from it is
// visible.
func (d *DB) SaveBatch(ctx context.Context, jobs []crawler.JobDetails, failed []crawler.FailedJob) error {
	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	for _, job := range jobs {
		_, err := tx.ExecContext(ctx, `
INSERT INTO jobs (job_id, title, company, description, location, url, scraped_at, success, error)
VALUES (?, ?, ?, ?, ?, ?, ?, 1, NULL)
ON CONFLICT(job_id) DO UPDATE SET
  title = excluded.title,
  company = excluded.company,
  description = excluded.description,
  location = excluded.location,
  url = excluded.url,
  scraped_at = excluded.scraped_at,
  success = 1,
  error = NULL;`,
			job.JobID, job.Title, job.Company, job.Description, job.Location, job.URL, now,
		)
		if err != nil {
			return fmt.Errorf("upsert job %s: %w", job.JobID, err)
		}
	}

	for _, f := range failed {
		_, err := tx.ExecContext(ctx, `
INSERT INTO jobs (job_id, title, company, description, location, url, scraped_at, success, error)
VALUES (?, NULL, NULL, NULL, NULL, NULL, ?, 0, ?)
ON CONFLICT(job_id) DO UPDATE SET
  title = NULL,
  company = NULL,
  description = NULL,
  location = NULL,
  url = NULL,
  scraped_at = excluded.scraped_at,
  success = 0,
  error = excluded.error;`,
			f.JobID, now, f.Error,
		)
		if err != nil {
			return fmt.Errorf("upsert failed job %s: %w", f.JobID, err)
		}
	}

	return tx.Commit()
}

// GetJob returns the persisted row for a job id, or sql.ErrNoRows.
func (d *DB) GetJob(ctx context.Context, jobID string) (*PersistedJob, error) {
	var (
		job       PersistedJob
		title     sql.NullString
		company   sql.NullString
		desc      sql.NullString
		location  sql.NullString
		url       sql.NullString
		errMsg    sql.NullString
		scrapedAt string
	)
	err := d.pool.QueryRowContext(ctx, `
SELECT job_id, title, company, description, location, url, scraped_at, success, error
FROM jobs WHERE job_id = ?;`, jobID).
		Scan(&job.JobID, &title, &company, &desc, &location, &url, &scrapedAt, &job.Success, &errMsg)
	if err != nil {
		return nil, err
	}

	job.Title = title.String
	job.Company = company.String
	job.Description = desc.String
	job.Location = location.String
	job.URL = url.String
	job.Error = errMsg.String
	if t, err := time.Parse(time.RFC3339, scrapedAt); err == nil {
		job.ScrapedAt = t
	}
	return &job, nil
}

// CountJobs returns the number of persisted rows.
func (d *DB) CountJobs(ctx context.Context) (int, error) {
	var n int
	err := d.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}

func (d *DB) Close() error {
	if d == nil || d.pool == nil {
		return nil
	}
	return d.pool.Close()
}
