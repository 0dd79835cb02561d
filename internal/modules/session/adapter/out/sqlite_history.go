package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"campusqa/internal/modules/session/domain"
	sessionout "campusqa/internal/modules/session/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// SQLiteHistory persists sessions and transcripts so a later run can
// restore them. Sources are stored as a JSON column: they are only ever
// read back whole, never queried.
type SQLiteHistory struct {
	db *sql.DB
}

func NewSQLiteHistory(dbPath string) (sessionout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	history := &SQLiteHistory{db: db}
	if err := history.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return history, nil
}

func (h *SQLiteHistory) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  subject TEXT NOT NULL,
  message_count INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
  id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  sources TEXT NOT NULL,
  seq INTEGER PRIMARY KEY AUTOINCREMENT
);
`
	if _, err := h.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create history tables: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) SaveSession(ctx context.Context, s domain.Session) error {
	const stmt = `
INSERT INTO sessions (id, subject, message_count, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  subject=excluded.subject,
  message_count=excluded.message_count;
`
	_, err := h.db.ExecContext(ctx, stmt, s.ID, s.Subject, s.MessageCount, s.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) UpdateSession(ctx context.Context, s domain.Session) error {
	return h.SaveSession(ctx, s)
}

func (h *SQLiteHistory) SaveMessage(ctx context.Context, sessionID string, msg domain.Message) error {
	sources, err := json.Marshal(msg.Sources)
	if err != nil {
		return fmt.Errorf("encode sources: %w", err)
	}
	const stmt = `
INSERT INTO messages (id, session_id, role, content, timestamp, sources)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err = h.db.ExecContext(ctx, stmt,
		msg.ID, sessionID, msg.Role, msg.Content, msg.Timestamp.Format(timeLayout), string(sources))
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) Load(ctx context.Context) ([]domain.Session, map[string][]domain.Message, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT id, subject, message_count, created_at FROM sessions ORDER BY created_at`)
	if err != nil {
		return nil, nil, fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Subject, &s.MessageCount, &createdAt); err != nil {
			return nil, nil, fmt.Errorf("scan session: %w", err)
		}
		s.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read sessions: %w", err)
	}

	transcripts, err := h.loadMessages(ctx)
	if err != nil {
		return nil, nil, err
	}
	return sessions, transcripts, nil
}

func (h *SQLiteHistory) loadMessages(ctx context.Context) (map[string][]domain.Message, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT id, session_id, role, content, timestamp, sources FROM messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	defer rows.Close()

	transcripts := make(map[string][]domain.Message)
	for rows.Next() {
		var msg domain.Message
		var sessionID, timestamp, sources string
		if err := rows.Scan(&msg.ID, &sessionID, &msg.Role, &msg.Content, &timestamp, &sources); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg.Timestamp, _ = time.Parse(timeLayout, timestamp)
		if err := json.Unmarshal([]byte(sources), &msg.Sources); err != nil {
			return nil, fmt.Errorf("decode sources: %w", err)
		}
		transcripts[sessionID] = append(transcripts[sessionID], msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return transcripts, nil
}

func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}
