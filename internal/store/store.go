// Package store provides SQLite-backed storage for generated plans, user
// registrations and feedback.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/napolitain/solver-pnw/internal/models"
)

var (
	// ErrNotRegistered is returned when a user has no registered nation
	ErrNotRegistered = errors.New("user not registered")
	// ErrNationTaken is returned when a nation belongs to another user
	ErrNationTaken = errors.New("nation already registered")
)

// DB wraps a SQLite connection
type DB struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a SQLite database at the given path
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	for _, pragma := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000"} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		user_id TEXT NOT NULL,
		nation_id INTEGER NOT NULL,
		city TEXT NOT NULL,
		continent TEXT NOT NULL,
		imp_total INTEGER NOT NULL,
		plan_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS registrations (
		user_id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL,
		nation_id INTEGER NOT NULL UNIQUE,
		nation_name TEXT NOT NULL,
		registered_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		user_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_plans_user ON plans(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_plans_nation ON plans(nation_id, created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// PlanEntry is a plan saved to the log
type PlanEntry struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	UserID    string            `json:"user_id"`
	NationID  int               `json:"nation_id"`
	City      string            `json:"city"`
	Continent models.Continent  `json:"continent"`
	Plan      models.PlanRecord `json:"plan"`
}

type planRow struct {
	ID        string `db:"id"`
	CreatedAt int64  `db:"created_at"`
	UserID    string `db:"user_id"`
	NationID  int    `db:"nation_id"`
	City      string `db:"city"`
	Continent string `db:"continent"`
	ImpTotal  int    `db:"imp_total"`
	PlanJSON  string `db:"plan_json"`
}

// SavePlan appends a plan to the log and returns its ID
func (db *DB) SavePlan(e PlanEntry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = db.now()
	}
	planJSON, err := json.Marshal(e.Plan)
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}

	_, err = db.conn.NamedExec(`
		INSERT INTO plans (id, created_at, user_id, nation_id, city, continent, imp_total, plan_json)
		VALUES (:id, :created_at, :user_id, :nation_id, :city, :continent, :imp_total, :plan_json)`,
		planRow{
			ID:        e.ID,
			CreatedAt: e.CreatedAt.UnixNano(),
			UserID:    e.UserID,
			NationID:  e.NationID,
			City:      e.City,
			Continent: string(e.Continent),
			ImpTotal:  e.Plan.ImpTotal,
			PlanJSON:  string(planJSON),
		})
	if err != nil {
		return "", fmt.Errorf("insert plan: %w", err)
	}
	return e.ID, nil
}

// RecentPlans returns the newest plans of a user, newest first. An empty
// userID returns plans of every user.
func (db *DB) RecentPlans(userID string, limit int) ([]PlanEntry, error) {
	query := "SELECT * FROM plans"
	var args []any
	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	var rows []planRow
	if err := db.conn.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("select plans: %w", err)
	}

	entries := make([]PlanEntry, 0, len(rows))
	for _, r := range rows {
		e := PlanEntry{
			ID:        r.ID,
			CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
			UserID:    r.UserID,
			NationID:  r.NationID,
			City:      r.City,
			Continent: models.Continent(r.Continent),
		}
		if err := json.Unmarshal([]byte(r.PlanJSON), &e.Plan); err != nil {
			return nil, fmt.Errorf("plan %s: %w", r.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Registration links a user to a nation
type Registration struct {
	UserID       string    `db:"user_id" json:"user_id"`
	UserName     string    `db:"user_name" json:"user_name"`
	NationID     int       `db:"nation_id" json:"nation_id"`
	NationName   string    `db:"nation_name" json:"nation_name"`
	RegisteredAt time.Time `db:"-" json:"registered_at"`
}

type registrationRow struct {
	Registration
	RegisteredAt int64 `db:"registered_at"`
}

// Register links a user to a nation. Re-registering replaces the user's
// previous nation; a nation held by another user is rejected.
func (db *DB) Register(r Registration) error {
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = db.now()
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var owner string
	err = tx.Get(&owner, "SELECT user_id FROM registrations WHERE nation_id = ?", r.NationID)
	switch {
	case err == nil && owner != r.UserID:
		return fmt.Errorf("%w: nation %d belongs to %s", ErrNationTaken, r.NationID, owner)
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("lookup nation: %w", err)
	}

	_, err = tx.NamedExec(`
		INSERT OR REPLACE INTO registrations (user_id, user_name, nation_id, nation_name, registered_at)
		VALUES (:user_id, :user_name, :nation_id, :nation_name, :registered_at)`,
		registrationRow{Registration: r, RegisteredAt: r.RegisteredAt.UnixNano()})
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return tx.Commit()
}

// Registration returns the nation registered to a user
func (db *DB) Registration(userID string) (*Registration, error) {
	var row registrationRow
	err := db.conn.Get(&row, "SELECT * FROM registrations WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("select registration: %w", err)
	}
	reg := row.Registration
	reg.RegisteredAt = time.Unix(0, row.RegisteredAt).UTC()
	return &reg, nil
}

// Unregister removes a user's registration
func (db *DB) Unregister(userID string) error {
	res, err := db.conn.Exec("DELETE FROM registrations WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotRegistered, userID)
	}
	return nil
}

// FeedbackKind distinguishes suggestions from bug reports
type FeedbackKind string

const (
	Suggestion FeedbackKind = "suggestion"
	BugReport  FeedbackKind = "bug"
)

// ParseFeedbackKind accepts "suggestion", "bug" or "report"
func ParseFeedbackKind(s string) (FeedbackKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suggestion", "suggest":
		return Suggestion, true
	case "bug", "report":
		return BugReport, true
	}
	return "", false
}

// Feedback is a suggestion or bug report
type Feedback struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UserID    string       `json:"user_id"`
	Kind      FeedbackKind `json:"kind"`
	Message   string       `json:"message"`
}

type feedbackRow struct {
	ID        string `db:"id"`
	CreatedAt int64  `db:"created_at"`
	UserID    string `db:"user_id"`
	Kind      string `db:"kind"`
	Message   string `db:"message"`
}

// AddFeedback appends feedback and returns its ID
func (db *DB) AddFeedback(f Feedback) (string, error) {
	if strings.TrimSpace(f.Message) == "" {
		return "", errors.New("empty feedback message")
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = db.now()
	}
	_, err := db.conn.NamedExec(`
		INSERT INTO feedback (id, created_at, user_id, kind, message)
		VALUES (:id, :created_at, :user_id, :kind, :message)`,
		feedbackRow{
			ID:        f.ID,
			CreatedAt: f.CreatedAt.UnixNano(),
			UserID:    f.UserID,
			Kind:      string(f.Kind),
			Message:   f.Message,
		})
	if err != nil {
		return "", fmt.Errorf("insert feedback: %w", err)
	}
	return f.ID, nil
}

// ListFeedback returns feedback of a kind, oldest first. An empty kind
// returns everything.
func (db *DB) ListFeedback(kind FeedbackKind) ([]Feedback, error) {
	query := "SELECT * FROM feedback"
	var args []any
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY created_at, id"

	var rows []feedbackRow
	if err := db.conn.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	out := make([]Feedback, 0, len(rows))
	for _, r := range rows {
		out = append(out, Feedback{
			ID:        r.ID,
			CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
			UserID:    r.UserID,
			Kind:      FeedbackKind(r.Kind),
			Message:   r.Message,
		})
	}
	return out, nil
}
