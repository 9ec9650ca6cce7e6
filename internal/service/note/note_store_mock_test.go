package note

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

var _ noteStore = &noteStoreMock{}

type noteStoreMock struct {
	ListFunc         func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error)
	GetByIDFunc      func(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	CreateFunc       func(ctx context.Context, n *domain.Note) (*domain.Note, error)
	UpdateFunc       func(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error)
	DeleteFunc       func(ctx context.Context, userID, noteID uuid.UUID) error
	PurgeTrashedFunc func(ctx context.Context, before time.Time) (int64, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Filter domain.ListFilter
		}
		GetByID []struct {
			UserID uuid.UUID
			NoteID uuid.UUID
		}
		Create []struct {
			N *domain.Note
		}
		Update []struct {
			UserID uuid.UUID
			NoteID uuid.UUID
			Patch  domain.NotePatch
		}
		Delete []struct {
			UserID uuid.UUID
			NoteID uuid.UUID
		}
		PurgeTrashed []struct {
			Before time.Time
		}
	}
	lockList         sync.RWMutex
	lockGetByID      sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockPurgeTrashed sync.RWMutex
}

func (mock *noteStoreMock) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteStoreMock.ListFunc: method is nil but noteStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
		Filter domain.ListFilter
	}{UserID: userID, Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *noteStoreMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.ListFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *noteStoreMock) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteStoreMock.GetByIDFunc: method is nil but noteStore.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		NoteID uuid.UUID
	}{UserID: userID, NoteID: noteID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, noteID)
}

func (mock *noteStoreMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *noteStoreMock) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteStoreMock.CreateFunc: method is nil but noteStore.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		N *domain.Note
	}{N: n})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteStoreMock) CreateCalls() []struct {
	N *domain.Note
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *noteStoreMock) Update(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteStoreMock.UpdateFunc: method is nil but noteStore.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		NoteID uuid.UUID
		Patch  domain.NotePatch
	}{UserID: userID, NoteID: noteID, Patch: patch})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, noteID, patch)
}

func (mock *noteStoreMock) UpdateCalls() []struct {
	UserID uuid.UUID
	NoteID uuid.UUID
	Patch  domain.NotePatch
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *noteStoreMock) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteStoreMock.DeleteFunc: method is nil but noteStore.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		NoteID uuid.UUID
	}{UserID: userID, NoteID: noteID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, noteID)
}

func (mock *noteStoreMock) DeleteCalls() []struct {
	UserID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *noteStoreMock) PurgeTrashed(ctx context.Context, before time.Time) (int64, error) {
	if mock.PurgeTrashedFunc == nil {
		panic("noteStoreMock.PurgeTrashedFunc: method is nil but noteStore.PurgeTrashed was just called")
	}
	mock.lockPurgeTrashed.Lock()
	mock.calls.PurgeTrashed = append(mock.calls.PurgeTrashed, struct {
		Before time.Time
	}{Before: before})
	mock.lockPurgeTrashed.Unlock()
	return mock.PurgeTrashedFunc(ctx, before)
}

func (mock *noteStoreMock) PurgeTrashedCalls() []struct {
	Before time.Time
} {
	mock.lockPurgeTrashed.RLock()
	defer mock.lockPurgeTrashed.RUnlock()
	return mock.calls.PurgeTrashed
}
