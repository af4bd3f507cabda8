package db

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	TypeHumanize  = "humanize"
	TypeDetect    = "detect"
	TypeExtract   = "extract"
	TypeSummarize = "summarize"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type Interaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"interaction_type"`
	InputText     string    `json:"input_text"`
	InputFilename string    `json:"input_filename,omitempty"`
	OutputText    string    `json:"output_text"`
	Tone          string    `json:"tone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type Filter struct {
	UserID string
	Type   string
	Limit  int
}

type Repository struct {
	conn   *sql.DB
	driver string
	now    func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewRepository(conn *sql.DB, driver string) *Repository {
	return &Repository{
		conn:    conn,
		driver:  driver,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

// Record stores in with a fresh ID and UTC timestamp and returns the stored row.
func (r *Repository) Record(ctx context.Context, in Interaction) (Interaction, error) {
	if strings.TrimSpace(in.Type) == "" {
		return Interaction{}, fmt.Errorf("record interaction: type is required")
	}
	if strings.TrimSpace(in.UserID) == "" {
		in.UserID = "anonymous"
	}
	now := r.now().UTC()
	r.mu.Lock()
	in.ID = ulid.MustNew(ulid.Timestamp(now), r.entropy).String()
	r.mu.Unlock()
	in.CreatedAt = now

	_, err := r.conn.ExecContext(ctx, rebind(r.driver,
		`INSERT INTO ai_interactions(id, user_id, interaction_type, input_text, input_filename, output_text, tone, created_at) VALUES(?,?,?,?,?,?,?,?)`),
		in.ID, in.UserID, in.Type, in.InputText, in.InputFilename, in.OutputText, in.Tone, now.Format(timeLayout),
	)
	if err != nil {
		return Interaction{}, fmt.Errorf("insert interaction: %w", err)
	}
	return in, nil
}

// List returns matching rows, newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]Interaction, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	var where []string
	var args []any
	if f.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.Type != "" {
		where = append(where, "interaction_type = ?")
		args = append(args, f.Type)
	}
	query := `SELECT id, user_id, interaction_type, input_text, input_filename, output_text, tone, created_at FROM ai_interactions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.conn.QueryContext(ctx, rebind(r.driver, query), args...)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	out := []Interaction{}
	for rows.Next() {
		var it Interaction
		var input, filename, output, tone sql.NullString
		var created string
		if err := rows.Scan(&it.ID, &it.UserID, &it.Type, &input, &filename, &output, &tone, &created); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		it.InputText = input.String
		it.InputFilename = filename.String
		it.OutputText = output.String
		it.Tone = tone.String
		if it.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	row := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM ai_interactions`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
