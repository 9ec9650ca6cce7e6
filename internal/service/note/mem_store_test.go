package note

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// memStore is an in-memory noteStore with the same observable semantics as
// the database adapters.
type memStore struct {
	mu    sync.Mutex
	notes map[uuid.UUID]domain.Note
}

var _ noteStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{notes: make(map[uuid.UUID]domain.Note)}
}

func (m *memStore) List(_ context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	needle := strings.ToLower(filter.Search)
	var out []domain.Note
	for _, n := range m.notes {
		if n.UserID != userID || n.View() != filter.View {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Content), needle) {
			continue
		}
		out = append(out, n)
	}

	slices.SortFunc(out, func(a, b domain.Note) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return &n, nil
}

func (m *memStore) Create(_ context.Context, n *domain.Note) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[n.ID]; ok {
		return nil, fmt.Errorf("note %s: %w", n.ID, domain.ErrAlreadyExists)
	}
	m.notes[n.ID] = *n
	created := *n
	return &created, nil
}

func (m *memStore) Update(_ context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	if patch.IsEmpty() {
		return &n, nil
	}
	n = applyPatch(patch, n)
	n.UpdatedAt = time.Now()
	m.notes[noteID] = n
	return &n, nil
}

func (m *memStore) Delete(_ context.Context, userID, noteID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[noteID]
	if !ok || n.UserID != userID {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	delete(m.notes, noteID)
	return nil
}

func (m *memStore) PurgeTrashed(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for id, n := range m.notes {
		if n.Trashed && n.DeletedAt != nil && n.DeletedAt.Before(before) {
			delete(m.notes, id)
			removed++
		}
	}
	return removed, nil
}

// all returns every stored note regardless of owner.
func (m *memStore) all() []domain.Note {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Note, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, n)
	}
	return out
}

// applyPatch returns a copy of n with the patch applied, the way the stores
// apply it in a single update.
func applyPatch(p domain.NotePatch, n domain.Note) domain.Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Archived != nil {
		n.Archived = *p.Archived
	}
	if p.Trashed != nil {
		n.Trashed = *p.Trashed
		n.DeletedAt = p.DeletedAt
	}
	return n
}
