package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a persona, thread or message does not exist.
var ErrNotFound = errors.New("not found")

// Persona is a configured character profile. Goals is a comma-delimited
// list of short directives, stored as-is.
type Persona struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Style      string `json:"style"`
	Boundaries string `json:"boundaries"`
	Goals      string `json:"goals"`
}

// Thread is one persistent conversation bound to a persona and a provider
// selection ("<vendor>:<model>").
type Thread struct {
	ID           string    `json:"id"`
	PersonaID    string    `json:"personaId"`
	ProviderSpec string    `json:"providerSpec"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Message is a single turn in a thread. Append-only; ordering is
// created_at ascending with id as tiebreak.
type Message struct {
	ID        int64     `json:"id"`
	ThreadID  string    `json:"threadId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store from an open connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the raw connection for tests and migrations tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// --- Personas ---

// GetPersona returns a persona by id.
func (s *Store) GetPersona(ctx context.Context, id string) (Persona, error) {
	var p Persona
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, bio, style, boundaries, goals FROM personas WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Bio, &p.Style, &p.Boundaries, &p.Goals)
	if errors.Is(err, sql.ErrNoRows) {
		return Persona{}, fmt.Errorf("persona %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Persona{}, err
	}
	return p, nil
}

// ListPersonas returns all personas ordered by id.
func (s *Store) ListPersonas(ctx context.Context) ([]Persona, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, bio, style, boundaries, goals FROM personas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Persona
	for rows.Next() {
		var p Persona
		if err := rows.Scan(&p.ID, &p.Name, &p.Bio, &p.Style, &p.Boundaries, &p.Goals); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CreatePersona inserts a new persona.
func (s *Store) CreatePersona(ctx context.Context, p Persona) (Persona, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO personas (id, name, bio, style, boundaries, goals) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Bio, p.Style, p.Boundaries, p.Goals)
	if err != nil {
		return Persona{}, fmt.Errorf("create persona: %w", err)
	}
	return p, nil
}

// UpdatePersona replaces the editable fields of an existing persona.
func (s *Store) UpdatePersona(ctx context.Context, p Persona) (Persona, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE personas SET name = ?, bio = ?, style = ?, boundaries = ?, goals = ? WHERE id = ?`,
		p.Name, p.Bio, p.Style, p.Boundaries, p.Goals, p.ID)
	if err != nil {
		return Persona{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Persona{}, fmt.Errorf("persona %s: %w", p.ID, ErrNotFound)
	}
	return p, nil
}

// SeedPersonas inserts personas that do not exist yet and returns how many
// were added.
func (s *Store) SeedPersonas(ctx context.Context, personas []Persona) (int, error) {
	added := 0
	for _, p := range personas {
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO personas (id, name, bio, style, boundaries, goals) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Bio, p.Style, p.Boundaries, p.Goals)
		if err != nil {
			return added, fmt.Errorf("seed persona %s: %w", p.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	return added, nil
}

// --- Threads ---

const threadColumns = `id, persona_id, provider_spec, summary, created_at, updated_at`

func scanThread(row interface{ Scan(...any) error }) (Thread, error) {
	var t Thread
	var created, updated int64
	if err := row.Scan(&t.ID, &t.PersonaID, &t.ProviderSpec, &t.Summary, &created, &updated); err != nil {
		return Thread{}, err
	}
	t.CreatedAt = time.Unix(created, 0)
	t.UpdatedAt = time.Unix(updated, 0)
	return t, nil
}

// GetThread returns a thread by id.
func (s *Store) GetThread(ctx context.Context, id string) (Thread, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+threadColumns+` FROM threads WHERE id = ?`, id)
	t, err := scanThread(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Thread{}, fmt.Errorf("thread %s: %w", id, ErrNotFound)
	}
	return t, err
}

// ListThreads returns all threads, most recently updated first.
func (s *Store) ListThreads(ctx context.Context) ([]Thread, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+threadColumns+` FROM threads ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Thread
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetOrCreateThreadParams names the fields a new thread inherits.
type GetOrCreateThreadParams struct {
	ID           string
	PersonaID    string
	ProviderSpec string
}

// GetOrCreateThread returns an existing thread or creates one with the
// given persona and provider spec.
func (s *Store) GetOrCreateThread(ctx context.Context, arg GetOrCreateThreadParams) (Thread, error) {
	t, err := s.GetThread(ctx, arg.ID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Thread{}, err
	}

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO threads (id, persona_id, provider_spec, summary, created_at, updated_at) VALUES (?, ?, ?, '', ?, ?)`,
		arg.ID, arg.PersonaID, arg.ProviderSpec, now, now)
	if err != nil {
		return Thread{}, fmt.Errorf("create thread: %w", err)
	}
	return Thread{
		ID:           arg.ID,
		PersonaID:    arg.PersonaID,
		ProviderSpec: arg.ProviderSpec,
		CreatedAt:    time.Unix(now, 0),
		UpdatedAt:    time.Unix(now, 0),
	}, nil
}

// UpdateThreadSummary replaces the rolling summary of a thread.
func (s *Store) UpdateThreadSummary(ctx context.Context, id, summary string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE threads SET summary = ?, updated_at = unixepoch() WHERE id = ?`, summary, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("thread %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteThread removes a thread and all its messages.
func (s *Store) DeleteThread(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE thread_id = ?`, id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM threads WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("thread %s: %w", id, ErrNotFound)
	}
	return nil
}

// --- Messages ---

// AppendMessageParams names the fields of a new message.
type AppendMessageParams struct {
	ThreadID string
	Role     string
	Content  string
}

// AppendMessage appends a message to a thread and bumps the thread's
// updated_at. Messages are never mutated after creation.
func (s *Store) AppendMessage(ctx context.Context, arg AppendMessageParams) (Message, error) {
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (thread_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		arg.ThreadID, arg.Role, arg.Content, now)
	if err != nil {
		return Message{}, fmt.Errorf("append message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Message{}, err
	}
	_, _ = s.db.ExecContext(ctx, `UPDATE threads SET updated_at = ? WHERE id = ?`, now, arg.ThreadID)

	return Message{
		ID:        id,
		ThreadID:  arg.ThreadID,
		Role:      arg.Role,
		Content:   arg.Content,
		CreatedAt: time.Unix(now, 0),
	}, nil
}

// RecentMessages returns the last limit messages of a thread in
// chronological order (created_at ascending, id as tiebreak).
func (s *Store) RecentMessages(ctx context.Context, threadID string, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, thread_id, role, content, created_at FROM messages
		 WHERE thread_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		threadID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := collectMessages(rows)
	if err != nil {
		return nil, err
	}
	// The query walks backwards from the tail; flip to chronological.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// ListMessages returns all messages of a thread in chronological order.
func (s *Store) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, thread_id, role, content, created_at FROM messages
		 WHERE thread_id = ? ORDER BY created_at, id`,
		threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

// DeleteMessage removes a single message by id.
func (s *Store) DeleteMessage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return nil
}

func collectMessages(rows *sql.Rows) ([]Message, error) {
	var out []Message
	for rows.Next() {
		var m Message
		var created int64
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.Role, &m.Content, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(created, 0)
		out = append(out, m)
	}
	return out, rows.Err()
}
