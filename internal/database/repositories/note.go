package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"notekeeper/internal/config"
	"notekeeper/internal/database/models"
	"strconv"
	"strings"
)

type NoteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, input models.NoteInput) (*models.Note, error)
	// Delete does not report a missing note.
	Delete(ctx context.Context, id string) error
}

type noteRepository struct {
	db     *sql.DB
	driver string
}

// NewNoteRepository returns a NoteRepository backed by db. driver selects the
// SQL dialect and is one of config.DriverPostgres or config.DriverSQLite.
func NewNoteRepository(db *sql.DB, driver string) NoteRepository {
	return &noteRepository{db: db, driver: driver}
}

// rebind turns ? placeholders into $n for postgres.
func (r *noteRepository) rebind(query string) string {
	if r.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *noteRepository) List(ctx context.Context) ([]models.Note, error) {
	query := `SELECT id, content, important FROM notes ORDER BY id`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer result.Close()
	notes := []models.Note{}
	for result.Next() {
		note, err := scanNote(result)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, *note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	numericID, ok := parseID(id)
	if !ok {
		return nil, ErrNoteNotFound
	}
	query := r.rebind(`SELECT id, content, important FROM notes WHERE id = ?`)
	note, err := scanNote(r.db.QueryRowContext(ctx, query, numericID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return note, nil
}

func (r *noteRepository) Create(ctx context.Context, input models.NoteInput) (*models.Note, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	defer tx.Rollback()

	if r.driver == config.DriverPostgres {
		// Blocks concurrent creators between reading the max id and inserting.
		if _, err := tx.ExecContext(ctx, `LOCK TABLE notes IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return nil, fmt.Errorf("error locking notes: %w", err)
		}
	}

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM notes`).Scan(&next); err != nil {
		return nil, fmt.Errorf("error generating note id: %w", err)
	}

	query := r.rebind(`INSERT INTO notes (id, content, important) VALUES (?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, query, next, input.Content, input.Important); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return &models.Note{
		ID:        strconv.FormatInt(next, 10),
		Content:   input.Content,
		Important: input.Important,
	}, nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	numericID, ok := parseID(id)
	if !ok {
		return nil
	}
	query := r.rebind(`DELETE FROM notes WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, numericID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var (
		note models.Note
		id   int64
	)
	if err := row.Scan(&id, &note.Content, &note.Important); err != nil {
		return nil, err
	}
	note.ID = strconv.FormatInt(id, 10)
	return &note, nil
}

// parseID accepts the canonical decimal form only, so "01" never matches "1".
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 || strconv.FormatInt(n, 10) != id {
		return 0, false
	}
	return n, true
}
