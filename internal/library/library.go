// Package library maintains a sqlite catalog of processed episodes and
// their extracted quotes. The pipeline consults it to skip episodes that
// already have transcripts, quotes and cards on disk.
package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// Episode is one catalog entry
type Episode struct {
	ID             int64
	AudioPath      string
	Title          string
	TranscriptPath string
	QuotesPath     string
	CardsDir       string
	QuoteCount     int
	CreatedAt      time.Time
}

// Library is the episode catalog
type Library struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog database at path
func Open(path string) (*Library, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}

	lib := &Library{db: db}
	if err := lib.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return lib, nil
}

// Close closes the underlying database
func (l *Library) Close() error {
	return l.db.Close()
}

// createTables creates the catalog schema
func (l *Library) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS episodes (
			id integer PRIMARY KEY AUTOINCREMENT,
			audio_path text NOT NULL UNIQUE,
			title text NOT NULL,
			transcript_path text NOT NULL DEFAULT '',
			quotes_path text NOT NULL DEFAULT '',
			cards_dir text NOT NULL DEFAULT '',
			created_at integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id integer PRIMARY KEY AUTOINCREMENT,
			episode_id integer NOT NULL REFERENCES episodes(id),
			text text NOT NULL,
			category text NOT NULL DEFAULT '',
			score real NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_episode ON quotes(episode_id)`,
	}

	for _, query := range queries {
		if _, err := l.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// RecordEpisode inserts or updates the catalog entry for ep.AudioPath and
// returns the episode row ID
func (l *Library) RecordEpisode(ep *Episode) (int64, error) {
	_, err := l.db.Exec(`
		INSERT INTO episodes (audio_path, title, transcript_path, quotes_path, cards_dir, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(audio_path) DO UPDATE SET
			title = excluded.title,
			transcript_path = excluded.transcript_path,
			quotes_path = excluded.quotes_path,
			cards_dir = excluded.cards_dir`,
		ep.AudioPath, ep.Title, ep.TranscriptPath, ep.QuotesPath, ep.CardsDir, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to record episode: %w", err)
	}

	var id int64
	err = l.db.QueryRow(`SELECT id FROM episodes WHERE audio_path = ?`, ep.AudioPath).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to look up episode: %w", err)
	}

	return id, nil
}

// RecordQuotes replaces the stored quotes for an episode
func (l *Library) RecordQuotes(episodeID int64, quotes []quote.Quote) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM quotes WHERE episode_id = ?`, episodeID); err != nil {
		return fmt.Errorf("failed to clear quotes: %w", err)
	}

	for _, q := range quotes {
		_, err := tx.Exec(`INSERT INTO quotes (episode_id, text, category, score) VALUES (?, ?, ?, ?)`,
			episodeID, q.Text, q.Category, q.Score)
		if err != nil {
			return fmt.Errorf("failed to insert quote: %w", err)
		}
	}

	return tx.Commit()
}

// IsComplete reports whether the episode was fully processed: all three
// stage outputs recorded and still present on disk.
func (l *Library) IsComplete(audioPath string) bool {
	var transcriptPath, quotesPath, cardsDir string
	err := l.db.QueryRow(`
		SELECT transcript_path, quotes_path, cards_dir
		FROM episodes WHERE audio_path = ?`, audioPath).
		Scan(&transcriptPath, &quotesPath, &cardsDir)
	if err != nil {
		return false
	}

	if transcriptPath == "" || quotesPath == "" || cardsDir == "" {
		return false
	}

	for _, path := range []string{transcriptPath, quotesPath, cardsDir} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}

	return true
}

// Episodes returns all catalog entries with their quote counts, newest first
func (l *Library) Episodes() ([]Episode, error) {
	rows, err := l.db.Query(`
		SELECT e.id, e.audio_path, e.title, e.transcript_path, e.quotes_path, e.cards_dir, e.created_at,
			(SELECT COUNT(*) FROM quotes q WHERE q.episode_id = e.id)
		FROM episodes e
		ORDER BY e.created_at DESC, e.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var ep Episode
		var createdAt int64
		err := rows.Scan(&ep.ID, &ep.AudioPath, &ep.Title, &ep.TranscriptPath,
			&ep.QuotesPath, &ep.CardsDir, &createdAt, &ep.QuoteCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		ep.CreatedAt = time.Unix(createdAt, 0)
		episodes = append(episodes, ep)
	}

	return episodes, rows.Err()
}
