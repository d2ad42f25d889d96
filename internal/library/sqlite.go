package library

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tunegrip/internal/domain"
	"tunegrip/internal/logging"
)

// SQLiteLibrary stores tracks in a SQLite database
type SQLiteLibrary struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the library database at path
func OpenSQLite(path string) (*SQLiteLibrary, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	l := &SQLiteLibrary{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logging.Info("library database opened", "path", path)
	return l, nil
}

func (l *SQLiteLibrary) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tracks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		artist TEXT NOT NULL DEFAULT '',
		album TEXT NOT NULL DEFAULT '',
		album_artist TEXT NOT NULL DEFAULT '',
		composer TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		track_number INTEGER NOT NULL DEFAULT 0,
		disc_number INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album);
	CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks(artist);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database
func (l *SQLiteLibrary) Close() error {
	return l.db.Close()
}

// Replace implements Replacer, swapping all tracks in one transaction
func (l *SQLiteLibrary) Replace(ctx context.Context, tracks []domain.Track) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tracks`); err != nil {
		return fmt.Errorf("clear tracks: %w", err)
	}
	if err := insertTracks(ctx, tx, tracks); err != nil {
		return err
	}
	return tx.Commit()
}

// Import upserts tracks, keeping tracks already in the database
func (l *SQLiteLibrary) Import(ctx context.Context, tracks []domain.Track) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertTracks(ctx, tx, tracks); err != nil {
		return err
	}
	return tx.Commit()
}

func insertTracks(ctx context.Context, tx *sql.Tx, tracks []domain.Track) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tracks (id, name, artist, album, album_artist, composer, year, track_number, disc_number, duration_ms, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			artist = excluded.artist,
			album = excluded.album,
			album_artist = excluded.album_artist,
			composer = excluded.composer,
			year = excluded.year,
			track_number = excluded.track_number,
			disc_number = excluded.disc_number,
			duration_ms = excluded.duration_ms,
			location = excluded.location
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range tracks {
		_, err := stmt.ExecContext(ctx,
			t.ID, t.Name, t.Artist, t.Album, t.AlbumArtist, t.Composer,
			t.Year, t.TrackNumber, t.DiscNumber, t.Duration.Milliseconds(), t.Location,
		)
		if err != nil {
			return fmt.Errorf("insert track %s: %w", t.ID, err)
		}
	}
	return nil
}

// Count implements Library
func (l *SQLiteLibrary) Count(ctx context.Context) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracks`).Scan(&n)
	return n, err
}

// likeEscaper escapes LIKE wildcards so the query is matched literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search implements Searcher with the same matching rules as MemoryLibrary
func (l *SQLiteLibrary) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1
	}
	pattern := "%" + likeEscaper.Replace(q) + "%"

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, name, artist, album, album_artist, composer, year, track_number, disc_number, duration_ms, location
		FROM tracks
		WHERE lower(name) LIKE ?1 ESCAPE '\'
		   OR lower(artist) LIKE ?1 ESCAPE '\'
		   OR lower(album) LIKE ?1 ESCAPE '\'
		   OR lower(composer) LIKE ?1 ESCAPE '\'
		ORDER BY rowid
		LIMIT ?2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	return scanTracks(rows)
}

// Tracks returns every track in insertion order
func (l *SQLiteLibrary) Tracks(ctx context.Context) ([]domain.Track, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, name, artist, album, album_artist, composer, year, track_number, disc_number, duration_ms, location
		FROM tracks
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return scanTracks(rows)
}

func scanTracks(rows *sql.Rows) ([]domain.Track, error) {
	defer rows.Close()

	var out []domain.Track
	for rows.Next() {
		var t domain.Track
		var durationMS int64
		if err := rows.Scan(&t.ID, &t.Name, &t.Artist, &t.Album, &t.AlbumArtist, &t.Composer,
			&t.Year, &t.TrackNumber, &t.DiscNumber, &durationMS, &t.Location); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		t.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, t)
	}
	return out, rows.Err()
}
