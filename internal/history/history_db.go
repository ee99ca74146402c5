package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studiowebux/promptcli/internal/migrations"
	"github.com/studiowebux/promptcli/internal/types"
)

// Manager stores answered questionnaires in a SQLite database.
type Manager struct {
	db *sql.DB
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	// Run database migrations (initializes the schema first)
	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db}, nil
}

// SaveAnswer records one answered question.
func (m *Manager) SaveAnswer(questionnaire string, question string, value any) error {
	query := `
		INSERT INTO answers (timestamp, questionnaire, question, kind, value)
		VALUES (?, ?, ?, ?, ?)
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query,
		timestampStr,
		questionnaire,
		question,
		types.KindOf(value),
		encodeValue(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	return nil
}

// Load returns the most recent answers across all questionnaires. A limit
// of zero or less loads everything.
func (m *Manager) Load(limit int) ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, questionnaire, question, kind, value
		FROM answers
		ORDER BY timestamp DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

// LoadForQuestionnaire returns the answers recorded for a questionnaire
// file, matching on the file's base name so both relative and absolute
// invocations find the same entries.
func (m *Manager) LoadForQuestionnaire(path string) ([]types.HistoryEntry, error) {
	baseName := filepath.Base(path)

	query := `
		SELECT id, timestamp, questionnaire, question, kind, value
		FROM answers
		WHERE questionnaire LIKE ?
		ORDER BY timestamp DESC, id DESC
	`

	pattern := "%" + baseName + "%"

	rows, err := m.db.Query(query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for questionnaire: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

func (m *Manager) scanEntries(rows *sql.Rows) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry

	for rows.Next() {
		var id int64
		var timestamp string
		var questionnaire string
		var question string
		var kind string
		var value sql.NullString

		if err := rows.Scan(&id, &timestamp, &questionnaire, &question, &kind, &value); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		// Parse timestamp as local time
		parsedTime, err := time.ParseInLocation("2006-01-02 15:04:05", timestamp, time.Local)
		if err != nil {
			// Try RFC3339 format as fallback
			parsedTime, err = time.Parse(time.RFC3339, timestamp)
			if err != nil {
				parsedTime = time.Now()
			}
		}

		entries = append(entries, types.HistoryEntry{
			ID:            id,
			Timestamp:     parsedTime.Format(time.RFC3339),
			Questionnaire: questionnaire,
			Question:      question,
			Kind:          kind,
			Value:         value.String,
		})
	}

	return entries, rows.Err()
}

func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM answers")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (m *Manager) Delete(id int64) error {
	_, err := m.db.Exec("DELETE FROM answers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}

func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM answers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// encodeValue renders an answer for storage. Scalars use their strconv
// form; anything else falls back to JSON.
func encodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
