package geneticsqa

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Bank is an optional SQLite archive of generation runs and their accepted
// questions. JSONL files remain the canonical pipeline output; the bank
// exists so past runs can be browsed and individual questions flagged
// during human review.
type Bank struct {
	db *sql.DB
}

// RunRecord summarizes one generation run.
type RunRecord struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Variant   string    `json:"variant"`
	CreatedAt time.Time `json:"created_at"`
	Accepted  int       `json:"accepted"`
	Failed    int       `json:"failed"`
}

// BankQuestion is a question row as stored in the bank.
type BankQuestion struct {
	ID            string `json:"id"`
	RunID         string `json:"run_id"`
	Category      string `json:"category"`
	Subtopic      string `json:"subtopic"`
	Question      string `json:"question"`
	Options       string `json:"options"` // JSON object of letter -> text
	CorrectAnswer string `json:"correct_answer"`
	Rationale     string `json:"rationale"`
	Confidence    string `json:"confidence"`
	CoreConcept   string `json:"core_concept"`
	Flagged       bool   `json:"flagged"`
}

// OpenBank opens (or creates) a bank database.
func OpenBank(path string) (*Bank, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping bank database: %w", err)
	}

	return &Bank{db: db}, nil
}

// Close closes the database connection.
func (b *Bank) Close() error {
	return b.db.Close()
}

// Init creates the bank tables if they don't exist.
func (b *Bank) Init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			model TEXT NOT NULL,
			variant TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			accepted INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			category TEXT,
			subtopic TEXT,
			question TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			rationale TEXT,
			confidence TEXT,
			core_concept TEXT,
			flagged INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
	}

	for _, query := range queries {
		if _, err := b.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// RecordRun stores a run summary and its accepted questions.
func (b *Bank) RecordRun(run *RunRecord, questions []*Question) error {
	_, err := b.db.Exec(
		"INSERT INTO runs (id, model, variant, created_at, accepted, failed) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Model, run.Variant, run.CreatedAt, run.Accepted, run.Failed,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	for _, q := range questions {
		optionsJSON, err := optionsToJSON(q.Options)
		if err != nil {
			return err
		}
		_, err = b.db.Exec(
			`INSERT INTO questions (id, run_id, category, subtopic, question, options, correct_answer, rationale, confidence, core_concept)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			newID(8), run.ID, q.Category, q.Subtopic, q.Question, optionsJSON, q.CorrectAnswer, q.Rationale(), q.Confidence, q.CoreConcept,
		)
		if err != nil {
			return fmt.Errorf("failed to store question: %w", err)
		}
	}
	return nil
}

// Runs returns run summaries, newest first, optionally limited by count.
func (b *Bank) Runs(limit int) ([]RunRecord, error) {
	query := "SELECT id, model, variant, created_at, accepted, failed FROM runs ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := b.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(&run.ID, &run.Model, &run.Variant, &run.CreatedAt, &run.Accepted, &run.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Questions returns the stored questions of one run, in insertion order.
func (b *Bank) Questions(runID string) ([]BankQuestion, error) {
	rows, err := b.db.Query(
		`SELECT id, run_id, category, subtopic, question, options, correct_answer, rationale, confidence, core_concept, flagged
		 FROM questions WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	var questions []BankQuestion
	for rows.Next() {
		var q BankQuestion
		err := rows.Scan(&q.ID, &q.RunID, &q.Category, &q.Subtopic, &q.Question, &q.Options,
			&q.CorrectAnswer, &q.Rationale, &q.Confidence, &q.CoreConcept, &q.Flagged)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

// MarkFlagged marks a stored question as flagged by human review.
func (b *Bank) MarkFlagged(questionID string) error {
	res, err := b.db.Exec("UPDATE questions SET flagged = 1 WHERE id = ?", questionID)
	if err != nil {
		return fmt.Errorf("failed to flag question: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("question not found: %s", questionID)
	}
	return nil
}

// ToQuestion converts a bank row back to a pipeline record.
func (bq *BankQuestion) ToQuestion() (*Question, error) {
	options, err := jsonToOptions(bq.Options)
	if err != nil {
		return nil, err
	}
	return &Question{
		Question:      bq.Question,
		Options:       options,
		CorrectAnswer: bq.CorrectAnswer,
		Reasoning:     bq.Rationale,
		Confidence:    bq.Confidence,
		CoreConcept:   bq.CoreConcept,
		Category:      bq.Category,
		Subtopic:      bq.Subtopic,
	}, nil
}

func optionsToJSON(options map[string]string) (string, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to marshal options: %w", err)
	}
	return string(data), nil
}

func jsonToOptions(optionsJSON string) (map[string]string, error) {
	var options map[string]string
	if err := json.Unmarshal([]byte(optionsJSON), &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	return options, nil
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return newID(12)
}

func newID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
