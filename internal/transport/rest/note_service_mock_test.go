package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
)

var _ noteService = &noteServiceMock{}

type noteServiceMock struct {
	ListFunc            func(ctx context.Context, input note.ListInput) ([]domain.Note, error)
	GetFunc             func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	CreateFunc          func(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	UpdateFunc          func(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	SoftDeleteFunc      func(ctx context.Context, noteID uuid.UUID) error
	RestoreFunc         func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	PermanentDeleteFunc func(ctx context.Context, noteID uuid.UUID) error
	DuplicateFunc       func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	TogglePinFunc       func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ToggleArchiveFunc   func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ExportFunc          func(ctx context.Context, input note.ExportInput) (*note.ExportResult, error)
	RenderHTMLFunc      func(ctx context.Context, noteID uuid.UUID) (string, error)

	calls struct {
		List []struct {
			Input note.ListInput
		}
		Get []struct {
			NoteID uuid.UUID
		}
		Create []struct {
			Input note.CreateInput
		}
		Update []struct {
			Input note.UpdateInput
		}
		SoftDelete []struct {
			NoteID uuid.UUID
		}
		Restore []struct {
			NoteID uuid.UUID
		}
		PermanentDelete []struct {
			NoteID uuid.UUID
		}
		Duplicate []struct {
			NoteID uuid.UUID
		}
		TogglePin []struct {
			NoteID uuid.UUID
		}
		ToggleArchive []struct {
			NoteID uuid.UUID
		}
		Export []struct {
			Input note.ExportInput
		}
		RenderHTML []struct {
			NoteID uuid.UUID
		}
	}
	lockList            sync.RWMutex
	lockGet             sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockSoftDelete      sync.RWMutex
	lockRestore         sync.RWMutex
	lockPermanentDelete sync.RWMutex
	lockDuplicate       sync.RWMutex
	lockTogglePin       sync.RWMutex
	lockToggleArchive   sync.RWMutex
	lockExport          sync.RWMutex
	lockRenderHTML      sync.RWMutex
}

func (mock *noteServiceMock) List(ctx context.Context, input note.ListInput) ([]domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteServiceMock.ListFunc: method is nil but noteService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Input note.ListInput
	}{Input: input})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *noteServiceMock) ListCalls() []struct {
	Input note.ListInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *noteServiceMock) Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetFunc == nil {
		panic("noteServiceMock.GetFunc: method is nil but noteService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, noteID)
}

func (mock *noteServiceMock) GetCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *noteServiceMock) Create(ctx context.Context, input note.CreateInput) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteServiceMock.CreateFunc: method is nil but noteService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Input note.CreateInput
	}{Input: input})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *noteServiceMock) CreateCalls() []struct {
	Input note.CreateInput
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *noteServiceMock) Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteServiceMock.UpdateFunc: method is nil but noteService.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Input note.UpdateInput
	}{Input: input})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *noteServiceMock) UpdateCalls() []struct {
	Input note.UpdateInput
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *noteServiceMock) SoftDelete(ctx context.Context, noteID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("noteServiceMock.SoftDeleteFunc: method is nil but noteService.SoftDelete was just called")
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, noteID)
}

func (mock *noteServiceMock) SoftDeleteCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	defer mock.lockSoftDelete.RUnlock()
	return mock.calls.SoftDelete
}

func (mock *noteServiceMock) Restore(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.RestoreFunc == nil {
		panic("noteServiceMock.RestoreFunc: method is nil but noteService.Restore was just called")
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, noteID)
}

func (mock *noteServiceMock) RestoreCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockRestore.RLock()
	defer mock.lockRestore.RUnlock()
	return mock.calls.Restore
}

func (mock *noteServiceMock) PermanentDelete(ctx context.Context, noteID uuid.UUID) error {
	if mock.PermanentDeleteFunc == nil {
		panic("noteServiceMock.PermanentDeleteFunc: method is nil but noteService.PermanentDelete was just called")
	}
	mock.lockPermanentDelete.Lock()
	mock.calls.PermanentDelete = append(mock.calls.PermanentDelete, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockPermanentDelete.Unlock()
	return mock.PermanentDeleteFunc(ctx, noteID)
}

func (mock *noteServiceMock) PermanentDeleteCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockPermanentDelete.RLock()
	defer mock.lockPermanentDelete.RUnlock()
	return mock.calls.PermanentDelete
}

func (mock *noteServiceMock) Duplicate(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.DuplicateFunc == nil {
		panic("noteServiceMock.DuplicateFunc: method is nil but noteService.Duplicate was just called")
	}
	mock.lockDuplicate.Lock()
	mock.calls.Duplicate = append(mock.calls.Duplicate, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockDuplicate.Unlock()
	return mock.DuplicateFunc(ctx, noteID)
}

func (mock *noteServiceMock) DuplicateCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockDuplicate.RLock()
	defer mock.lockDuplicate.RUnlock()
	return mock.calls.Duplicate
}

func (mock *noteServiceMock) TogglePin(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.TogglePinFunc == nil {
		panic("noteServiceMock.TogglePinFunc: method is nil but noteService.TogglePin was just called")
	}
	mock.lockTogglePin.Lock()
	mock.calls.TogglePin = append(mock.calls.TogglePin, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockTogglePin.Unlock()
	return mock.TogglePinFunc(ctx, noteID)
}

func (mock *noteServiceMock) TogglePinCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockTogglePin.RLock()
	defer mock.lockTogglePin.RUnlock()
	return mock.calls.TogglePin
}

func (mock *noteServiceMock) ToggleArchive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.ToggleArchiveFunc == nil {
		panic("noteServiceMock.ToggleArchiveFunc: method is nil but noteService.ToggleArchive was just called")
	}
	mock.lockToggleArchive.Lock()
	mock.calls.ToggleArchive = append(mock.calls.ToggleArchive, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockToggleArchive.Unlock()
	return mock.ToggleArchiveFunc(ctx, noteID)
}

func (mock *noteServiceMock) ToggleArchiveCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockToggleArchive.RLock()
	defer mock.lockToggleArchive.RUnlock()
	return mock.calls.ToggleArchive
}

func (mock *noteServiceMock) Export(ctx context.Context, input note.ExportInput) (*note.ExportResult, error) {
	if mock.ExportFunc == nil {
		panic("noteServiceMock.ExportFunc: method is nil but noteService.Export was just called")
	}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, struct {
		Input note.ExportInput
	}{Input: input})
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, input)
}

func (mock *noteServiceMock) ExportCalls() []struct {
	Input note.ExportInput
} {
	mock.lockExport.RLock()
	defer mock.lockExport.RUnlock()
	return mock.calls.Export
}

func (mock *noteServiceMock) RenderHTML(ctx context.Context, noteID uuid.UUID) (string, error) {
	if mock.RenderHTMLFunc == nil {
		panic("noteServiceMock.RenderHTMLFunc: method is nil but noteService.RenderHTML was just called")
	}
	mock.lockRenderHTML.Lock()
	mock.calls.RenderHTML = append(mock.calls.RenderHTML, struct {
		NoteID uuid.UUID
	}{NoteID: noteID})
	mock.lockRenderHTML.Unlock()
	return mock.RenderHTMLFunc(ctx, noteID)
}

func (mock *noteServiceMock) RenderHTMLCalls() []struct {
	NoteID uuid.UUID
} {
	mock.lockRenderHTML.RLock()
	defer mock.lockRenderHTML.RUnlock()
	return mock.calls.RenderHTML
}

