package repositories

import (
	"context"
	"notekeeper/internal/database/models"
	"slices"
	"strconv"
	"sync"
)

type memoryNoteRepository struct {
	mu    sync.Mutex
	notes []models.Note
}

// NewMemoryNoteRepository returns a process-local NoteRepository holding a
// copy of seed. Nothing survives a restart.
func NewMemoryNoteRepository(seed []models.Note) NoteRepository {
	return &memoryNoteRepository{notes: slices.Clone(seed)}
}

func (r *memoryNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := make([]models.Note, len(r.notes))
	copy(notes, r.notes)
	return notes, nil
}

func (r *memoryNoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, note := range r.notes {
		if note.ID == id {
			return &note, nil
		}
	}
	return nil, ErrNoteNotFound
}

func (r *memoryNoteRepository) Create(ctx context.Context, input models.NoteInput) (*models.Note, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	note := models.Note{
		ID:        r.nextID(),
		Content:   input.Content,
		Important: input.Important,
	}
	r.notes = append(r.notes, note)
	return &note, nil
}

func (r *memoryNoteRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = slices.DeleteFunc(r.notes, func(note models.Note) bool {
		return note.ID == id
	})
	return nil
}

// nextID is one more than the largest numeric id held. Ids that do not
// parse as integers are ignored. Callers hold mu.
func (r *memoryNoteRepository) nextID() string {
	var maxID int64
	for _, note := range r.notes {
		if n, err := strconv.ParseInt(note.ID, 10, 64); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.FormatInt(maxID+1, 10)
}
